package stockrepo

import (
	"context"
	"encoding/json"
	"time"

	"govendas/internal/pkg/kvstore"
	"govendas/internal/pkg/logger"
	"govendas/internal/repository/documentrepo"
)

// DocumentKey é a chave reservada para movimentações de estoque.
// O valor gravado é sempre um array vazio; o estoque vive no próprio produto.
const DocumentKey = "stock-placeholder"

// StockRepository mantém o documento reservado de estoque em sincronia com as demais gravações.
type StockRepository struct {
	coll *documentrepo.Collection[json.RawMessage]
}

// NewStockRepository cria o repositório do documento de estoque.
func NewStockRepository(store kvstore.Store, timeout time.Duration, log logger.Logger) *StockRepository {
	return &StockRepository{
		coll: documentrepo.NewCollection[json.RawMessage](store, DocumentKey, timeout, log),
	}
}

// SavePlaceholder grava [] sob a chave reservada.
func (r *StockRepository) SavePlaceholder(ctx context.Context) error {
	return r.coll.Save(ctx, nil)
}
