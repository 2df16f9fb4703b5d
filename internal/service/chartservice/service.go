package chartservice

import (
	"fmt"
	"time"

	"govendas/internal/domain"
	apperror "govendas/internal/errors"
)

// Nomes aceitos por Chart.
const (
	ChartDailySales        = "daily-sales"
	ChartTopProducts       = "top-products"
	ChartStock             = "stock"
	ChartCumulativeRevenue = "cumulative-revenue"
)

// StateReader fornece cópias consistentes do estado do inventário.
type StateReader interface {
	Snapshot() ([]domain.Product, []domain.Sale)
}

// Service recalcula as séries sobre o estado atual a cada chamada.
type Service struct {
	state StateReader
	now   func() time.Time
}

// NewService cria o serviço de gráficos.
func NewService(state StateReader, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{state: state, now: now}
}

// Charts devolve as quatro séries.
func (s *Service) Charts() domain.Charts {
	products, sales := s.state.Snapshot()
	return All(products, sales, s.now())
}

// Chart devolve uma única série pelo nome.
func (s *Service) Chart(name string) (domain.Series, error) {
	products, sales := s.state.Snapshot()
	now := s.now()

	switch name {
	case ChartDailySales:
		return DailySales(sales, now), nil
	case ChartTopProducts:
		return TopProducts(sales), nil
	case ChartStock:
		return StockSnapshot(products), nil
	case ChartCumulativeRevenue:
		return CumulativeRevenue(sales, now), nil
	default:
		return domain.Series{}, apperror.NewNotFoundError(fmt.Sprintf("Gráfico '%s' não existe.", name))
	}
}
