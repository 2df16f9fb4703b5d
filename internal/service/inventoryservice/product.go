package inventoryservice

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"govendas/internal/domain"
	apperror "govendas/internal/errors"
)

// CreateProduct valida e cadastra um produto. Preço e estoque inicial zero são aceitos.
func (s *Service) CreateProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.create_product")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)

	if name == "" || category == "" {
		return domain.Product{}, s.fail(span, apperror.NewValidationError("Nome e categoria são obrigatórios para o produto."))
	}
	if input.UnitPrice.IsNegative() {
		return domain.Product{}, s.fail(span, apperror.NewValidationError("O preço do produto não pode ser negativo."))
	}
	if input.InitialStock < 0 {
		return domain.Product{}, s.fail(span, apperror.NewValidationError("O estoque inicial não pode ser negativo."))
	}

	product := domain.Product{
		ID:            s.newID(),
		Name:          name,
		Category:      category,
		UnitPrice:     input.UnitPrice,
		StockQuantity: input.InitialStock,
		RegisteredAt:  s.now(),
	}
	span.SetAttributes(attribute.String("product.id", product.ID))

	s.mu.Lock()
	defer s.mu.Unlock()

	products := append(copyProducts(s.products), product)
	if err := s.persist(ctx, products, s.sales); err != nil {
		s.logger.Error("Falha ao persistir novo produto.", err)
		return domain.Product{}, s.fail(span, err)
	}
	s.products = products

	s.logger.Info("Produto cadastrado.", map[string]interface{}{"product_id": product.ID, "name": product.Name, "stock": product.StockQuantity})
	return product, nil
}

// GetProduct busca um produto pelo ID.
func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfProduct(s.products, id)
	if idx < 0 {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não foi encontrado.", id))
	}
	return s.products[idx], nil
}

// DeleteProduct remove o produto do catálogo. Vendas antigas continuam referenciando o ID.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "inventory.delete_product")
	defer span.End()
	span.SetAttributes(attribute.String("product.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfProduct(s.products, id)
	if idx < 0 {
		return s.fail(span, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não foi encontrado.", id)))
	}

	products := make([]domain.Product, 0, len(s.products)-1)
	products = append(products, s.products[:idx]...)
	products = append(products, s.products[idx+1:]...)

	if err := s.persist(ctx, products, s.sales); err != nil {
		s.logger.Error("Falha ao persistir exclusão de produto.", err)
		return s.fail(span, err)
	}
	s.products = products

	s.logger.Info("Produto excluído.", map[string]interface{}{"product_id": id})
	return nil
}
