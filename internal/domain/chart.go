package domain

// Series é a tupla consumida pelo renderizador de gráficos externo.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors,omitempty"`
}

// Charts agrupa as quatro séries derivadas.
type Charts struct {
	DailySales        Series `json:"daily_sales"`
	TopProducts       Series `json:"top_products"`
	StockSnapshot     Series `json:"stock_snapshot"`
	CumulativeRevenue Series `json:"cumulative_revenue"`
}
