package inventoryservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"govendas/internal/domain"
	apperror "govendas/internal/errors"
)

// ParseStockQuantity interpreta o texto livre do ajuste de estoque: inteiro base 10, >= 0.
func ParseStockQuantity(raw string) (int, error) {
	text := strings.TrimSpace(raw)
	quantity, err := strconv.Atoi(text)
	if err != nil {
		return 0, apperror.NewValidationError(fmt.Sprintf("Quantidade de estoque inválida: %q.", raw))
	}
	if quantity < 0 {
		return 0, apperror.NewValidationError("A quantidade de estoque não pode ser negativa.")
	}
	return quantity, nil
}

// AdjustStock sobrescreve o estoque de um produto com a quantidade informada em texto.
func (s *Service) AdjustStock(ctx context.Context, id string, raw string) (domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.adjust_stock")
	defer span.End()
	span.SetAttributes(attribute.String("product.id", id))

	quantity, err := ParseStockQuantity(raw)
	if err != nil {
		return domain.Product{}, s.fail(span, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfProduct(s.products, id)
	if idx < 0 {
		return domain.Product{}, s.fail(span, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não foi encontrado.", id)))
	}

	products := copyProducts(s.products)
	previous := products[idx].StockQuantity
	products[idx].StockQuantity = quantity

	if err := s.persist(ctx, products, s.sales); err != nil {
		s.logger.Error("Falha ao persistir ajuste de estoque.", err)
		return domain.Product{}, s.fail(span, err)
	}
	s.products = products

	s.logger.Info("Estoque ajustado.", map[string]interface{}{"product_id": id, "from": previous, "to": quantity})
	return products[idx], nil
}

// StockLevels monta a tabela de estoque com mínimo fixo e status por produto.
func (s *Service) StockLevels() []domain.StockLevel {
	s.mu.Lock()
	defer s.mu.Unlock()

	levels := make([]domain.StockLevel, 0, len(s.products))
	for _, p := range s.products {
		levels = append(levels, domain.StockLevel{
			ProductID:     p.ID,
			Name:          p.Name,
			StockQuantity: p.StockQuantity,
			Minimum:       domain.LowStockThreshold,
			Status:        domain.StatusFor(p.StockQuantity),
		})
	}
	return levels
}
