package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Drivers de armazenamento suportados pelo adaptador de persistência.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

// Exportadores de tracing suportados.
const (
	OtelNone   = "none"
	OtelStdout = "stdout"
	OtelOTLP   = "otlp"
)

// Config armazena todas as configurações do GoVendas.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Armazenamento (adaptador de persistência)
	StorageDriver  string
	SQLitePath     string
	DatabaseURL    string
	RedisAddr      string
	StorageTimeout time.Duration

	// Segurança (JWT)
	JWTSecretKey string
	TokenExpiry  time.Duration

	// Rate Limiting (só ativo com Redis)
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Eventos de venda (Kafka, opcional)
	KafkaBroker     string
	KafkaSalesTopic string

	// Tracing (OpenTelemetry)
	OtelExporter string
	OtelEndpoint string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env (se existir) já deve ter sido carregado pelo main.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", StorageSQLite)),
		SQLitePath:     getEnv("SQLITE_PATH", "govendas.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		StorageTimeout: getDurationEnv("STORAGE_TIMEOUT_SEC", 5) * time.Second,

		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		TokenExpiry:  getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute,

		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,

		KafkaBroker:     getEnv("KAFKA_BROKER", ""),
		KafkaSalesTopic: getEnv("KAFKA_SALES_TOPIC", "sales.created"),

		OtelExporter: strings.ToLower(getEnv("OTEL_EXPORTER", OtelNone)),
		OtelEndpoint: getEnv("OTEL_ENDPOINT", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate garante que a aplicação não inicie com credenciais obrigatórias ausentes.
func (c *Config) validate() error {
	if c.JWTSecretKey == "" {
		return fmt.Errorf("a variável de ambiente JWT_SECRET_KEY deve ser definida")
	}

	switch c.StorageDriver {
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH não pode ser vazio com STORAGE_DRIVER=sqlite")
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL deve ser definida com STORAGE_DRIVER=postgres")
		}
	case StorageRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR deve ser definida com STORAGE_DRIVER=redis")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER inválido: %q", c.StorageDriver)
	}

	switch c.OtelExporter {
	case OtelNone, OtelStdout:
	case OtelOTLP:
		if c.OtelEndpoint == "" {
			return fmt.Errorf("OTEL_ENDPOINT deve ser definida com OTEL_EXPORTER=otlp")
		}
	default:
		return fmt.Errorf("OTEL_EXPORTER inválido: %q", c.OtelExporter)
	}
	return nil
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável numérica e a retorna como time.Duration (sem unidade).
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável numérica; valores inválidos caem no padrão com aviso.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
