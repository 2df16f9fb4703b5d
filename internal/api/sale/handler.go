package sale

import (
	"context"
	"net/http"
	"strings"

	"govendas/internal/api/respond"
	"govendas/internal/domain"
	"govendas/internal/pkg/logger"
	"govendas/internal/service/inventoryservice"
)

// SaleService define o contrato de vendas esperado pelo Handler.
type SaleService interface {
	CreateSale(ctx context.Context, req domain.SaleRequest) (domain.Sale, error)
	ListSales() []domain.Sale
}

// Handler agrupa os handlers de venda.
type Handler struct {
	Service SaleService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler de vendas.
func NewHandler(svc SaleService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateSaleRequest é o payload de venda. Quantidades vêm como array ou como texto "3, 2".
type CreateSaleRequest struct {
	Customer       string   `json:"customer" example:"Ana"`
	ProductIDs     []string `json:"product_ids"`
	Quantities     []int    `json:"quantities,omitempty"`
	QuantitiesText string   `json:"quantities_text,omitempty" example:"3, 2"`
}

func (c CreateSaleRequest) toDomain() (domain.SaleRequest, error) {
	quantities := c.Quantities
	if quantities == nil && strings.TrimSpace(c.QuantitiesText) != "" {
		parsed, err := inventoryservice.ParseQuantities(c.QuantitiesText)
		if err != nil {
			return domain.SaleRequest{}, err
		}
		quantities = parsed
	}
	return domain.SaleRequest{
		Customer:   c.Customer,
		ProductIDs: c.ProductIDs,
		Quantities: quantities,
	}, nil
}

// CreateSaleHandler lida com a requisição POST /v1/sales.
// @Summary Registra uma venda
// @Description Verifica o estoque de todos os itens antes de baixar; qualquer falha cancela a venda inteira.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body CreateSaleRequest true "Cliente, produtos e quantidades"
// @Success 201 {object} domain.Sale "Venda registrada"
// @Failure 400 {object} domain.ErrorResponse "Dados inválidos"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Failure 422 {object} domain.ErrorResponse "Estoque insuficiente"
// @Security ApiKeyAuth
// @Router /sales [post]
func (h *Handler) CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateSaleRequest
	if err := respond.Decode(r, &payload); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	req, err := payload.toDomain()
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreateSale(r.Context(), req)
	respond.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// ListSalesHandler lida com a requisição GET /v1/sales.
// @Summary Lista as vendas
// @Tags sales
// @Produce json
// @Success 200 {array} domain.Sale "Histórico de vendas"
// @Router /sales [get]
func (h *Handler) ListSalesHandler(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, h.Logger, http.StatusOK, h.Service.ListSales())
}
