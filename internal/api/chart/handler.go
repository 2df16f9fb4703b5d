package chart

import (
	"net/http"

	"govendas/internal/api/respond"
	"govendas/internal/domain"
	"govendas/internal/pkg/logger"
)

// ChartService define o contrato esperado pelo Handler.
type ChartService interface {
	Charts() domain.Charts
	Chart(name string) (domain.Series, error)
}

// Handler serve as séries dos gráficos.
type Handler struct {
	Service ChartService
	Logger  logger.Logger
}

// NewHandler cria o Handler de gráficos.
func NewHandler(svc ChartService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// GetChartsHandler lida com a requisição GET /v1/charts.
// @Summary Todas as séries
// @Tags charts
// @Produce json
// @Success 200 {object} domain.Charts "Vendas diárias, top produtos, estoque e receita acumulada"
// @Router /charts [get]
func (h *Handler) GetChartsHandler(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, h.Logger, http.StatusOK, h.Service.Charts())
}

// GetChartHandler lida com a requisição GET /v1/charts/{name}.
// @Summary Uma série
// @Tags charts
// @Produce json
// @Param name path string true "daily-sales, top-products, stock ou cumulative-revenue"
// @Success 200 {object} domain.Series "Série"
// @Failure 404 {object} domain.ErrorResponse "Gráfico desconhecido"
// @Router /charts/{name} [get]
func (h *Handler) GetChartHandler(w http.ResponseWriter, r *http.Request) {
	series, err := h.Service.Chart(r.PathValue("name"))
	respond.Handle(w, r, h.Logger, series, err, http.StatusOK)
}
