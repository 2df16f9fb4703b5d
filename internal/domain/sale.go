package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatusCompleted é o único status produzido pelo fluxo de venda (não há cancelamento/estorno).
const SaleStatusCompleted = "Completed"

// Sale é o registro imutável de uma transação concluída.
// Total é a soma dos subtotais no momento da criação.
type Sale struct {
	ID         string          `json:"id"`
	Customer   string          `json:"customer"`
	Items      []LineItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurred_at"`
	Status     string          `json:"status"`
}

// LineItem guarda uma cópia do nome e do preço do produto no momento da venda.
// Edições ou exclusões posteriores do produto não alteram o histórico.
type LineItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleRequest é a entrada da criação de venda: ProductIDs e Quantities são pareados por posição.
type SaleRequest struct {
	Customer   string   `json:"customer"`
	ProductIDs []string `json:"product_ids"`
	Quantities []int    `json:"quantities"`
}
