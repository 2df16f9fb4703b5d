package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"govendas/config"
	"govendas/internal/pkg/events"
	"govendas/internal/pkg/kvstore"
	"govendas/internal/pkg/logger"
	"govendas/internal/pkg/telemetry"
	"govendas/internal/pkg/token"

	// Camadas para Injeção de Dependências
	"govendas/internal/api/chart"
	"govendas/internal/api/dashboard"
	"govendas/internal/api/product"
	"govendas/internal/api/router"
	"govendas/internal/api/sale"
	"govendas/internal/api/stock"
	"govendas/internal/api/user"
	"govendas/internal/repository/productrepo"
	"govendas/internal/repository/salerepo"
	"govendas/internal/repository/stockrepo"
	"govendas/internal/repository/userrepo"
	"govendas/internal/service/chartservice"
	"govendas/internal/service/dashboardservice"
	"govendas/internal/service/inventoryservice"
	"govendas/internal/service/userservice"
)

func main() {
	log.Println("⚡ Inicializando serviço GoVendas...")

	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}
	appLog := logger.NewLogger(cfg.LogLevel)
	defer appLog.Sync()
	appLog.Info("Configurações carregadas.", map[string]interface{}{"storage": cfg.StorageDriver, "env": cfg.Environment})

	// 1. Tracing
	shutdownTracing, err := telemetry.SetupTracing(context.Background(), cfg)
	if err != nil {
		appLog.Fatal("Falha ao configurar tracing.", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			appLog.Error("Falha ao encerrar tracing.", err)
		}
	}()

	// 2. Armazenamento de documentos
	store, redisClient, err := kvstore.Open(cfg)
	if err != nil {
		appLog.Fatal("Falha ao abrir o armazenamento.", err)
	}
	defer store.Close()
	appLog.Info("Armazenamento aberto.", map[string]interface{}{"driver": cfg.StorageDriver})

	// 3. Eventos de venda
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaBroker != "" {
		publisher = events.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaSalesTopic)
		appLog.Info("Publicação de vendas no Kafka habilitada.", map[string]interface{}{"broker": cfg.KafkaBroker, "topic": cfg.KafkaSalesTopic})
	}
	defer publisher.Close()

	// 4. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	productRepo := productrepo.NewProductRepository(store, cfg.StorageTimeout, appLog)
	saleRepo := salerepo.NewSaleRepository(store, cfg.StorageTimeout, appLog)
	stockRepo := stockrepo.NewStockRepository(store, cfg.StorageTimeout, appLog)
	userRepo := userrepo.NewUserRepository(store, cfg.StorageTimeout, appLog)

	inventorySvc := inventoryservice.NewService(productRepo, saleRepo, stockRepo, appLog,
		inventoryservice.WithPublisher(publisher),
	)
	if err := inventorySvc.Load(context.Background()); err != nil {
		appLog.Fatal("Falha ao carregar o estado do inventário.", err)
	}

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	userSvc := userservice.NewService(userRepo, tokenSvc, appLog)
	dashboardSvc := dashboardservice.NewService(inventorySvc, time.Now)
	chartSvc := chartservice.NewService(inventorySvc, time.Now)

	handlers := router.Handlers{
		Product:   product.NewHandler(inventorySvc, appLog),
		Stock:     stock.NewHandler(inventorySvc, appLog),
		Sale:      sale.NewHandler(inventorySvc, appLog),
		Dashboard: dashboard.NewHandler(dashboardSvc, appLog),
		Chart:     chart.NewHandler(chartSvc, appLog),
		User:      user.NewHandler(userSvc, appLog),
	}

	// 5. Roteador e Servidor
	r := router.NewRouter(handlers, router.Options{
		TokenService:    tokenSvc,
		RateLimitClient: redisClient,
		RateLimitMax:    cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
		Logger:          appLog,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 6. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor GoVendas ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
