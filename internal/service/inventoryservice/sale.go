package inventoryservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"govendas/internal/domain"
	apperror "govendas/internal/errors"
)

// ParseQuantities interpreta o campo de quantidades separado por vírgulas ("3, 2").
// Só verifica o formato; quantidades <= 0 são recusadas por CreateSale.
func ParseQuantities(text string) ([]int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperror.NewValidationError("Informe as quantidades.")
	}

	tokens := strings.Split(text, ",")
	quantities := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		q, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, apperror.NewValidationError(fmt.Sprintf("Quantidade inválida: %q.", strings.TrimSpace(tok)))
		}
		quantities = append(quantities, q)
	}
	return quantities, nil
}

func validateSaleRequest(req domain.SaleRequest) error {
	if strings.TrimSpace(req.Customer) == "" {
		return apperror.NewValidationError("O nome do cliente é obrigatório.")
	}
	if len(req.ProductIDs) == 0 {
		return apperror.NewValidationError("Selecione ao menos um produto.")
	}
	if len(req.ProductIDs) != len(req.Quantities) {
		return apperror.NewValidationError(fmt.Sprintf("Foram informados %d produtos e %d quantidades.", len(req.ProductIDs), len(req.Quantities)))
	}

	seen := make(map[string]struct{}, len(req.ProductIDs))
	for i, id := range req.ProductIDs {
		if req.Quantities[i] <= 0 {
			return apperror.NewValidationError(fmt.Sprintf("A quantidade do item %d deve ser maior que zero.", i+1))
		}
		if _, dup := seen[id]; dup {
			return apperror.NewValidationError(fmt.Sprintf("Produto %s selecionado mais de uma vez.", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

// CreateSale registra uma venda. Todos os itens são verificados antes de qualquer baixa:
// se um item falhar, nenhum estoque muda e nenhuma venda é gravada.
func (s *Service) CreateSale(ctx context.Context, req domain.SaleRequest) (domain.Sale, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.create_sale")
	defer span.End()
	span.SetAttributes(attribute.Int("sale.item_count", len(req.ProductIDs)))

	if err := validateSaleRequest(req); err != nil {
		return domain.Sale{}, s.fail(span, err)
	}

	sale, err := s.commitSale(ctx, req)
	if err != nil {
		return domain.Sale{}, s.fail(span, err)
	}
	span.SetAttributes(
		attribute.String("sale.id", sale.ID),
		attribute.String("sale.total", sale.Total.StringFixed(2)),
	)

	// Publicado fora do lock.
	if err := s.publisher.PublishSaleCreated(ctx, sale); err != nil {
		s.logger.Warn("Falha ao publicar evento de venda.", map[string]interface{}{"sale_id": sale.ID, "error": err.Error()})
	}
	return sale, nil
}

func (s *Service) commitSale(ctx context.Context, req domain.SaleRequest) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Passo 1: verificação, sem mutação.
	indexes := make([]int, len(req.ProductIDs))
	for i, id := range req.ProductIDs {
		idx := indexOfProduct(s.products, id)
		if idx < 0 {
			return domain.Sale{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não foi encontrado.", id))
		}
		p := s.products[idx]
		if p.StockQuantity < req.Quantities[i] {
			s.logger.Info("Venda recusada por estoque insuficiente.", map[string]interface{}{
				"product_id": p.ID, "requested": req.Quantities[i], "available": p.StockQuantity,
			})
			return domain.Sale{}, apperror.NewInsufficientStockError(p.ID, p.Name, req.Quantities[i], p.StockQuantity)
		}
		indexes[i] = idx
	}

	// Passo 2: baixa sobre a cópia.
	products := copyProducts(s.products)
	items := make([]domain.LineItem, 0, len(indexes))
	total := decimal.Zero
	for i, idx := range indexes {
		qty := req.Quantities[i]
		p := &products[idx]
		subtotal := p.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))

		items = append(items, domain.LineItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    qty,
			UnitPrice:   p.UnitPrice,
			Subtotal:    subtotal,
		})
		p.StockQuantity -= qty
		total = total.Add(subtotal)
	}

	sale := domain.Sale{
		ID:         s.newID(),
		Customer:   strings.TrimSpace(req.Customer),
		Items:      items,
		Total:      total,
		OccurredAt: s.now(),
		Status:     domain.SaleStatusCompleted,
	}
	sales := append(copySales(s.sales), sale)

	if err := s.persist(ctx, products, sales); err != nil {
		s.logger.Error("Falha ao persistir venda.", err)
		return domain.Sale{}, err
	}
	s.products = products
	s.sales = sales

	s.logger.Info("Venda registrada.", map[string]interface{}{"sale_id": sale.ID, "customer": sale.Customer, "total": sale.Total.StringFixed(2)})
	return sale, nil
}
