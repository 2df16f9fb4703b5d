package dashboard

import (
	"net/http"

	"govendas/internal/api/respond"
	"govendas/internal/domain"
	"govendas/internal/pkg/logger"
)

// DashboardService define o contrato esperado pelo Handler.
type DashboardService interface {
	GetDashboard() domain.Dashboard
}

// Handler serve os números de resumo.
type Handler struct {
	Service DashboardService
	Logger  logger.Logger
}

// NewHandler cria o Handler do dashboard.
func NewHandler(svc DashboardService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// GetDashboardHandler lida com a requisição GET /v1/dashboard.
// @Summary Números do dashboard
// @Description Recalculado a cada chamada a partir do estado atual.
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.Dashboard "Resumo"
// @Router /dashboard [get]
func (h *Handler) GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, h.Logger, http.StatusOK, h.Service.GetDashboard())
}
