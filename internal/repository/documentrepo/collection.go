// Package documentrepo traduz o substrato get/set de strings em coleções tipadas de documentos JSON.
package documentrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	apperror "govendas/internal/errors"
	"govendas/internal/pkg/kvstore"
	"govendas/internal/pkg/logger"
)

// Collection é um array JSON de T gravado inteiro sob uma única chave.
type Collection[T any] struct {
	store   kvstore.Store
	key     string
	timeout time.Duration
	logger  logger.Logger
}

// NewCollection cria a coleção para a chave informada.
func NewCollection[T any](store kvstore.Store, key string, timeout time.Duration, log logger.Logger) *Collection[T] {
	return &Collection[T]{
		store:   store,
		key:     key,
		timeout: timeout,
		logger:  log,
	}
}

// Key retorna a chave do documento.
func (c *Collection[T]) Key() string {
	return c.key
}

// Load lê a coleção. Documento ausente ou malformado vira coleção vazia (sem erro);
// só falhas do substrato (conexão, timeout) são retornadas.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.store.Get(ctxTimeout, c.key)
	if errors.Is(err, kvstore.ErrNotFound) {
		c.logger.Debug("Documento ausente, usando coleção vazia.", map[string]interface{}{"key": c.key})
		return []T{}, nil
	}
	if err != nil {
		c.logger.Error("Falha ao ler documento do armazenamento.", err)
		return nil, apperror.NewDBError("Falha ao carregar "+c.key, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.logger.Warn("Documento malformado, usando coleção vazia.", map[string]interface{}{"key": c.key, "error": err.Error()})
		return []T{}, nil
	}
	if items == nil {
		// "null" gravado por versões antigas
		items = []T{}
	}

	c.logger.Debug("Documento carregado.", map[string]interface{}{"key": c.key, "count": len(items)})
	return items, nil
}

// Save sobrescreve a coleção inteira. nil é gravado como [].
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		c.logger.Error("Falha ao serializar coleção.", err)
		return apperror.NewInternalError("Falha ao serializar "+c.key, err)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.store.Set(ctxTimeout, c.key, string(payload)); err != nil {
		c.logger.Error("Falha ao gravar documento no armazenamento.", err)
		return apperror.NewDBError("Falha ao salvar "+c.key, err)
	}

	c.logger.Debug("Documento gravado.", map[string]interface{}{"key": c.key, "count": len(items)})
	return nil
}
