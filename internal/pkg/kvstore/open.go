package kvstore

import (
	"fmt"

	"govendas/config"
	"govendas/internal/pkg/cache"
	"govendas/internal/pkg/database"
)

// RedisKeyPrefix separa os documentos de outras chaves no mesmo Redis.
const RedisKeyPrefix = "govendas:doc:"

// Open abre o Store configurado em cfg.StorageDriver.
// Quando o driver é redis, o cache.Client criado é devolvido para ser reaproveitado (rate limiter).
func Open(cfg *config.Config) (Store, cache.Client, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return NewMemoryStore(), nil, nil

	case config.StorageSQLite:
		db, err := database.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store, err := NewSQLiteStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil

	case config.StoragePostgres:
		db, err := database.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresStore(db), nil, nil

	case config.StorageRedis:
		client, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(client, RedisKeyPrefix), client, nil
	}
	return nil, nil, fmt.Errorf("driver de armazenamento desconhecido: %q", cfg.StorageDriver)
}
