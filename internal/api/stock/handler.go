package stock

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"govendas/internal/api/respond"
	"govendas/internal/domain"
	apperror "govendas/internal/errors"
	"govendas/internal/pkg/logger"
)

// StockService define o contrato de estoque esperado pelo Handler.
type StockService interface {
	AdjustStock(ctx context.Context, id string, raw string) (domain.Product, error)
	StockLevels() []domain.StockLevel
}

// Handler agrupa os handlers de estoque.
type Handler struct {
	Service StockService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler de estoque.
func NewHandler(svc StockService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// adjustRequest aceita a quantidade como texto ("12") ou número (12).
type adjustRequest struct {
	Quantity json.RawMessage `json:"quantity"`
}

// rawQuantity devolve o texto da quantidade como o operador digitou.
func (a adjustRequest) rawQuantity() (string, error) {
	raw := strings.TrimSpace(string(a.Quantity))
	if raw == "" || raw == "null" {
		return "", apperror.NewValidationError("A quantidade é obrigatória.")
	}
	if strings.HasPrefix(raw, `"`) {
		var text string
		if err := json.Unmarshal(a.Quantity, &text); err != nil {
			return "", apperror.NewValidationError("Quantidade malformada.")
		}
		return text, nil
	}
	return raw, nil
}

// AdjustStockHandler lida com a requisição PUT /v1/products/{id}/stock.
// @Summary Ajusta o estoque de um produto
// @Description Sobrescreve o estoque com um inteiro >= 0 (texto ou número).
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "ID do Produto"
// @Param adjustment body domain.StockAdjustmentRequest true "Nova quantidade"
// @Success 200 {object} domain.Product "Produto atualizado"
// @Failure 400 {object} domain.ErrorResponse "Quantidade inválida"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Security ApiKeyAuth
// @Router /products/{id}/stock [put]
func (h *Handler) AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	raw, err := req.rawQuantity()
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.AdjustStock(r.Context(), r.PathValue("id"), raw)
	respond.Handle(w, r, h.Logger, updated, err, http.StatusOK)
}

// StockLevelsHandler lida com a requisição GET /v1/stock.
// @Summary Tabela de estoque
// @Description Estoque atual, mínimo (5) e status de cada produto.
// @Tags stock
// @Produce json
// @Success 200 {array} domain.StockLevel "Níveis de estoque"
// @Router /stock [get]
func (h *Handler) StockLevelsHandler(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, h.Logger, http.StatusOK, h.Service.StockLevels())
}
