package dashboardservice_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"govendas/internal/domain"
	"govendas/internal/service/dashboardservice"
)

type MockStateReader struct {
	mock.Mock
}

func (m *MockStateReader) Snapshot() ([]domain.Product, []domain.Sale) {
	args := m.Called()
	return args.Get(0).([]domain.Product), args.Get(1).([]domain.Sale)
}

var now = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func sale(total string, at time.Time) domain.Sale {
	return domain.Sale{Total: decimal.RequireFromString(total), OccurredAt: at, Status: domain.SaleStatusCompleted}
}

func TestCompute(t *testing.T) {
	products := []domain.Product{
		{ID: "a", StockQuantity: 0},
		{ID: "b", StockQuantity: 5},
		{ID: "c", StockQuantity: 20},
	}
	sales := []domain.Sale{
		sale("10.00", now.Add(-time.Hour)),
		sale("2.50", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		sale("7.25", time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)),
		sale("1.00", time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)),
	}

	d := dashboardservice.Compute(products, sales, now)

	assert.Equal(t, 3, d.ProductCount)
	assert.Equal(t, 25, d.TotalStockUnits)
	assert.Equal(t, 2, d.SalesThisMonth)
	assert.True(t, d.TotalRevenue.Equal(decimal.RequireFromString("20.75")))
	assert.Equal(t, "R$ 20.75", d.TotalRevenueFormatted)
	assert.Equal(t, 2, d.LowStockCount)
	assert.Equal(t, 1, d.OutOfStockCount)
}

func TestCompute_Empty(t *testing.T) {
	d := dashboardservice.Compute(nil, nil, now)

	assert.Equal(t, 0, d.ProductCount)
	assert.Equal(t, "R$ 0.00", d.TotalRevenueFormatted)
}

func TestCompute_MonthUsesNowLocation(t *testing.T) {
	sp := time.FixedZone("BRT", -3*60*60)
	localNow := time.Date(2024, 3, 31, 22, 0, 0, 0, sp)
	// 01/04 01:00 UTC ainda é 31/03 em BRT.
	sales := []domain.Sale{sale("5.00", time.Date(2024, 4, 1, 1, 0, 0, 0, time.UTC))}

	d := dashboardservice.Compute(nil, sales, localNow)
	assert.Equal(t, 1, d.SalesThisMonth)
}

func TestGetDashboard_IsIdempotent(t *testing.T) {
	state := new(MockStateReader)
	state.On("Snapshot").Return(
		[]domain.Product{{ID: "a", StockQuantity: 3}},
		[]domain.Sale{sale("10.00", now), sale("4.00", now)},
	)
	svc := dashboardservice.NewService(state, func() time.Time { return now })

	first := svc.GetDashboard()
	second := svc.GetDashboard()

	assert.Equal(t, first, second)
	assert.Equal(t, "R$ 14.00", first.TotalRevenueFormatted)
	state.AssertNumberOfCalls(t, "Snapshot", 2)
}
