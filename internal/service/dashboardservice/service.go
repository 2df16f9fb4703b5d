package dashboardservice

import (
	"time"

	"github.com/shopspring/decimal"

	"govendas/internal/domain"
)

// StateReader fornece cópias consistentes do estado do inventário.
type StateReader interface {
	Snapshot() ([]domain.Product, []domain.Sale)
}

// Compute calcula os números de resumo. Função pura: mesmas entradas, mesmo resultado.
// "Este mês" usa o mês e o ano de now, no fuso de now.
func Compute(products []domain.Product, sales []domain.Sale, now time.Time) domain.Dashboard {
	d := domain.Dashboard{
		ProductCount: len(products),
		TotalRevenue: decimal.Zero,
	}

	for _, p := range products {
		d.TotalStockUnits += p.StockQuantity
		if p.StockQuantity <= domain.LowStockThreshold {
			d.LowStockCount++
		}
		if p.StockQuantity == 0 {
			d.OutOfStockCount++
		}
	}

	year, month, _ := now.Date()
	for _, s := range sales {
		d.TotalRevenue = d.TotalRevenue.Add(s.Total)

		sy, sm, _ := s.OccurredAt.In(now.Location()).Date()
		if sy == year && sm == month {
			d.SalesThisMonth++
		}
	}

	d.TotalRevenueFormatted = domain.FormatCurrency(d.TotalRevenue)
	return d
}

// Service recalcula o dashboard a cada chamada, sem cache.
type Service struct {
	state StateReader
	now   func() time.Time
}

// NewService cria o serviço de dashboard.
func NewService(state StateReader, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{state: state, now: now}
}

// GetDashboard calcula o dashboard sobre o estado atual.
func (s *Service) GetDashboard() domain.Dashboard {
	products, sales := s.state.Snapshot()
	return Compute(products, sales, s.now())
}
