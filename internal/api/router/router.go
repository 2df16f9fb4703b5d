package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"govendas/internal/api/chart"
	"govendas/internal/api/dashboard"
	"govendas/internal/api/product"
	"govendas/internal/api/sale"
	"govendas/internal/api/stock"
	"govendas/internal/api/user"
	"govendas/internal/domain"
	"govendas/internal/pkg/cache"
	"govendas/internal/pkg/logger"
	"govendas/internal/pkg/middleware"

	_ "govendas/docs" // registra o spec do Swagger
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Product   *product.Handler
	Stock     *stock.Handler
	Sale      *sale.Handler
	Dashboard *dashboard.Handler
	Chart     *chart.Handler
	User      *user.Handler
}

// Options controla os middlewares globais.
// Sem RateLimitClient (Redis não configurado) o rate limit fica desligado.
type Options struct {
	TokenService    middleware.TokenService
	RateLimitClient cache.Client
	RateLimitMax    int
	RateLimitPeriod time.Duration
	Logger          logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opts Options) http.Handler {
	mux := http.NewServeMux()

	auth := middleware.NewAuthMiddleware(opts.TokenService)
	adminOnly := middleware.PermissionMiddleware(domain.RoleAdmin)

	handle := mux.HandleFunc

	// --- Health Check ---
	handle("GET /ping", PingHandler)

	// --- Operadores ---
	handle("POST /v1/auth/register", h.User.RegisterUserHandler)
	handle("POST /v1/auth/login", h.User.LoginUserHandler)

	// --- Produtos ---
	handle("GET /v1/products", h.Product.ListProductsHandler)
	handle("POST /v1/products", auth(h.Product.CreateProductHandler))
	handle("GET /v1/products/{id}", h.Product.GetProductHandler)
	handle("DELETE /v1/products/{id}", auth(adminOnly(h.Product.DeleteProductHandler)))

	// --- Estoque ---
	handle("PUT /v1/products/{id}/stock", auth(h.Stock.AdjustStockHandler))
	handle("GET /v1/stock", h.Stock.StockLevelsHandler)

	// --- Vendas ---
	handle("GET /v1/sales", h.Sale.ListSalesHandler)
	handle("POST /v1/sales", auth(h.Sale.CreateSaleHandler))

	// --- Leituras derivadas ---
	handle("GET /v1/dashboard", h.Dashboard.GetDashboardHandler)
	handle("GET /v1/charts", h.Chart.GetChartsHandler)
	handle("GET /v1/charts/{name}", h.Chart.GetChartHandler)

	// --- Documentação ---
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var handler http.Handler = mux
	if opts.RateLimitClient != nil {
		handler = middleware.RateLimiter(opts.RateLimitClient, opts.RateLimitMax, opts.RateLimitPeriod, opts.Logger)(handler)
	}
	handler = middleware.RequestLogger(opts.Logger)(handler)

	return otelhttp.NewHandler(handler, "govendas-http")
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
