package productrepo

import (
	"context"
	"time"

	"govendas/internal/domain"
	"govendas/internal/pkg/kvstore"
	"govendas/internal/pkg/logger"
	"govendas/internal/repository/documentrepo"
)

// DocumentKey é a chave sob a qual o catálogo inteiro é gravado.
const DocumentKey = "products"

// ProductRepository persiste a lista de produtos como um único documento JSON.
type ProductRepository struct {
	coll   *documentrepo.Collection[domain.Product]
	logger logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
func NewProductRepository(store kvstore.Store, timeout time.Duration, log logger.Logger) *ProductRepository {
	return &ProductRepository{
		coll:   documentrepo.NewCollection[domain.Product](store, DocumentKey, timeout, log),
		logger: log,
	}
}

// LoadAll lê o catálogo. Documento ausente ou malformado retorna lista vazia.
func (r *ProductRepository) LoadAll(ctx context.Context) ([]domain.Product, error) {
	return r.coll.Load(ctx)
}

// SaveAll sobrescreve o catálogo inteiro.
func (r *ProductRepository) SaveAll(ctx context.Context, products []domain.Product) error {
	return r.coll.Save(ctx, products)
}
