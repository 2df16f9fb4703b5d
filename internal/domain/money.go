package domain

import "github.com/shopspring/decimal"

// CurrencySymbol é a única convenção de moeda suportada.
const CurrencySymbol = "R$"

func init() {
	// Valores monetários vão para o JSON como números, não como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// FormatCurrency formata um valor como "R$ 10.00".
func FormatCurrency(amount decimal.Decimal) string {
	return CurrencySymbol + " " + amount.StringFixed(2)
}
