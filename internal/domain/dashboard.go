package domain

import "github.com/shopspring/decimal"

// Dashboard reúne os números de resumo calculados a partir de produtos e vendas.
type Dashboard struct {
	ProductCount          int             `json:"product_count"`
	TotalStockUnits       int             `json:"total_stock_units"`
	SalesThisMonth        int             `json:"sales_this_month"`
	TotalRevenue          decimal.Decimal `json:"total_revenue"`
	TotalRevenueFormatted string          `json:"total_revenue_formatted"`
	LowStockCount         int             `json:"low_stock_count"`
	OutOfStockCount       int             `json:"out_of_stock_count"`
}
