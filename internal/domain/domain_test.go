package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govendas/internal/domain"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, domain.StockStatusOut, domain.StatusFor(0))
	assert.Equal(t, domain.StockStatusLow, domain.StatusFor(1))
	assert.Equal(t, domain.StockStatusLow, domain.StatusFor(5))
	assert.Equal(t, domain.StockStatusNormal, domain.StatusFor(6))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 10.00", domain.FormatCurrency(decimal.NewFromInt(10)))
	assert.Equal(t, "R$ 2.50", domain.FormatCurrency(decimal.RequireFromString("2.5")))
	assert.Equal(t, "R$ 0.00", domain.FormatCurrency(decimal.Zero))
}

func TestProduct_PriceIsJSONNumber(t *testing.T) {
	p := domain.Product{ID: "p1", Name: "Gadget", UnitPrice: decimal.RequireFromString("2.50")}

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"unit_price":2.5`)

	var back domain.Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","unit_price":"2.50"}`), &back))
	assert.True(t, back.UnitPrice.Equal(decimal.RequireFromString("2.5")))
}

func TestUser_PublicHidesHash(t *testing.T) {
	u := domain.User{ID: "u1", Email: "ana@example.com", PasswordHash: "hash", Role: domain.RoleAdmin}

	raw, err := json.Marshal(u.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.Contains(t, string(raw), "ana@example.com")
}
