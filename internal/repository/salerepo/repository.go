package salerepo

import (
	"context"
	"time"

	"govendas/internal/domain"
	"govendas/internal/pkg/kvstore"
	"govendas/internal/pkg/logger"
	"govendas/internal/repository/documentrepo"
)

// DocumentKey é a chave do histórico de vendas.
const DocumentKey = "sales"

// SaleRepository persiste o histórico de vendas (apenas acréscimos) como um único documento JSON.
type SaleRepository struct {
	coll *documentrepo.Collection[domain.Sale]
}

// NewSaleRepository cria o repositório de vendas.
func NewSaleRepository(store kvstore.Store, timeout time.Duration, log logger.Logger) *SaleRepository {
	return &SaleRepository{
		coll: documentrepo.NewCollection[domain.Sale](store, DocumentKey, timeout, log),
	}
}

// LoadAll lê todas as vendas na ordem em que foram registradas.
func (r *SaleRepository) LoadAll(ctx context.Context) ([]domain.Sale, error) {
	return r.coll.Load(ctx)
}

// SaveAll sobrescreve o histórico inteiro.
func (r *SaleRepository) SaveAll(ctx context.Context, sales []domain.Sale) error {
	return r.coll.Save(ctx, sales)
}
