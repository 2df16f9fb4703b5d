package kvstore

import (
	"context"
	"errors"

	"govendas/internal/pkg/cache"
)

// RedisStore grava cada documento como uma chave Redis sem expiração.
type RedisStore struct {
	client cache.Client
	prefix string
}

// NewRedisStore cria o store sobre um cache.Client. O prefixo isola as chaves do rate limiter.
func NewRedisStore(client cache.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.prefix+key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0)
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
