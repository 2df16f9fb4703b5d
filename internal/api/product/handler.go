package product

import (
	"context"
	"net/http"
	"strconv"

	"govendas/internal/api/respond"
	"govendas/internal/domain"
	"govendas/internal/pkg/logger"
	"govendas/internal/pkg/middleware"
)

// ProductService define o contrato que o Handler espera da camada de Serviço.
type ProductService interface {
	CreateProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts() []domain.Product
	SellableProducts() []domain.Product
}

// Handler agrupa todos os métodos de Handler do produto.
type Handler struct {
	Service ProductService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProductService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateProductHandler lida com a requisição POST /v1/products.
// @Summary Cadastra um produto
// @Description Cria um produto com preço unitário e estoque inicial (zero é aceito).
// @Tags products
// @Accept json
// @Produce json
// @Param product body domain.ProductInput true "Dados do produto"
// @Success 201 {object} domain.Product "Produto criado"
// @Failure 400 {object} domain.ErrorResponse "Campos obrigatórios ausentes ou valores negativos"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Security ApiKeyAuth
// @Router /products [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if claims, ok := middleware.GetUserClaimsFromContext(ctx); ok {
		h.Logger.Info("Tentativa de criação de produto por", map[string]interface{}{
			"user_id": claims.UserID,
			"role":    claims.Role,
		})
	}

	var input domain.ProductInput
	if err := respond.Decode(r, &input); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreateProduct(ctx, input)
	respond.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// ListProductsHandler lida com a requisição GET /v1/products.
// @Summary Lista os produtos
// @Description Lista o catálogo na ordem de cadastro. Com sellable=true, só produtos com estoque.
// @Tags products
// @Produce json
// @Param sellable query bool false "Somente produtos com estoque > 0"
// @Success 200 {array} domain.Product "Produtos"
// @Router /products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	sellable, _ := strconv.ParseBool(r.URL.Query().Get("sellable"))

	if sellable {
		respond.JSON(w, h.Logger, http.StatusOK, h.Service.SellableProducts())
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, h.Service.ListProducts())
}

// GetProductHandler lida com a requisição GET /v1/products/{id}.
// @Summary Obtém um produto por ID
// @Tags products
// @Produce json
// @Param id path string true "ID do Produto"
// @Success 200 {object} domain.Product "Produto encontrado"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id} [get]
func (h *Handler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	product, err := h.Service.GetProduct(r.Context(), r.PathValue("id"))
	respond.Handle(w, r, h.Logger, product, err, http.StatusOK)
}

// DeleteProductHandler lida com a requisição DELETE /v1/products/{id}.
// @Summary Exclui um produto
// @Description Remove o produto do catálogo. Vendas antigas continuam com o nome e preço registrados.
// @Tags products
// @Param id path string true "ID do Produto"
// @Success 204 "Produto excluído"
// @Failure 403 {object} domain.ErrorResponse "Somente admin"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Security ApiKeyAuth
// @Router /products/{id} [delete]
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteProduct(r.Context(), r.PathValue("id"))
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}
