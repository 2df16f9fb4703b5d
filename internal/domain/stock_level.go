package domain

// LowStockThreshold é o limite fixo de "baixo estoque" (estoque <= 5).
const LowStockThreshold = 5

// StockStatus classifica o nível de estoque de um produto.
type StockStatus string

const (
	StockStatusOut    StockStatus = "out_of_stock"
	StockStatusLow    StockStatus = "low_stock"
	StockStatusNormal StockStatus = "normal"
)

// StatusFor aplica os limites de estoque: 0 = em falta, <= 5 = baixo, acima disso normal.
func StatusFor(quantity int) StockStatus {
	switch {
	case quantity == 0:
		return StockStatusOut
	case quantity <= LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusNormal
	}
}

// StockLevel é a linha da tabela de estoque exibida ao operador.
type StockLevel struct {
	ProductID     string      `json:"product_id"`
	Name          string      `json:"name"`
	StockQuantity int         `json:"stock_quantity"`
	Minimum       int         `json:"minimum"`
	Status        StockStatus `json:"status"`
}

// StockAdjustmentRequest é o payload do ajuste manual de estoque.
// Quantity chega como texto livre e é validada pelo serviço.
type StockAdjustmentRequest struct {
	Quantity string `json:"quantity"`
}
