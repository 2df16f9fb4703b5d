package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um item vendável com preço e estoque controlado.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity"` // Nunca negativo
	RegisteredAt  time.Time       `json:"registered_at"`
}

// ProductInput é o payload de cadastro de produto.
type ProductInput struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	InitialStock int             `json:"initial_stock"`
}
