// Package inventoryservice é dono do agregado em memória (produtos e vendas) e de todas as mutações.
// Cada mutação trabalha sobre cópias, grava o snapshot completo e só então troca o estado atual.
package inventoryservice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"govendas/internal/domain"
	"govendas/internal/pkg/logger"
)

// ProductRepository define o contrato de persistência do catálogo.
type ProductRepository interface {
	LoadAll(ctx context.Context) ([]domain.Product, error)
	SaveAll(ctx context.Context, products []domain.Product) error
}

// SaleRepository define o contrato de persistência do histórico de vendas.
type SaleRepository interface {
	LoadAll(ctx context.Context) ([]domain.Sale, error)
	SaveAll(ctx context.Context, sales []domain.Sale) error
}

// StockRepository mantém o documento reservado de estoque.
type StockRepository interface {
	SavePlaceholder(ctx context.Context) error
}

// EventPublisher notifica consumidores externos sobre vendas concluídas.
type EventPublisher interface {
	PublishSaleCreated(ctx context.Context, sale domain.Sale) error
}

type nopPublisher struct{}

func (nopPublisher) PublishSaleCreated(ctx context.Context, sale domain.Sale) error { return nil }

// Service é o agregado de inventário.
type Service struct {
	mu       sync.Mutex
	products []domain.Product
	sales    []domain.Sale

	productRepo ProductRepository
	saleRepo    SaleRepository
	stockRepo   StockRepository
	publisher   EventPublisher
	logger      logger.Logger
	tracer      trace.Tracer

	now   func() time.Time
	newID func() string
}

// Option customiza o Service (relógio, gerador de IDs, publisher, tracer).
type Option func(*Service)

// WithClock injeta o relógio usado em registered_at e occurred_at.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator injeta o gerador de IDs de produtos e vendas.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// WithPublisher liga a publicação de eventos de venda.
func WithPublisher(p EventPublisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithTracer substitui o tracer global.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// NewService cria o agregado vazio. Chame Load antes de servir requisições.
func NewService(productRepo ProductRepository, saleRepo SaleRepository, stockRepo StockRepository, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		products:    []domain.Product{},
		sales:       []domain.Sale{},
		productRepo: productRepo,
		saleRepo:    saleRepo,
		stockRepo:   stockRepo,
		publisher:   nopPublisher{},
		logger:      log,
		tracer:      otel.Tracer("govendas/inventoryservice"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load lê produtos e vendas do armazenamento e os torna o estado atual.
// Documentos ausentes ou malformados resultam em coleções vazias.
func (s *Service) Load(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "inventory.load")
	defer span.End()

	products, err := s.productRepo.LoadAll(ctx)
	if err != nil {
		return s.fail(span, err)
	}
	sales, err := s.saleRepo.LoadAll(ctx)
	if err != nil {
		return s.fail(span, err)
	}

	s.mu.Lock()
	s.products = products
	s.sales = sales
	s.mu.Unlock()

	s.logger.Info("Estado de inventário carregado.", map[string]interface{}{"products": len(products), "sales": len(sales)})
	return nil
}

// persist grava o snapshot completo. Deve ser chamado com s.mu travado.
func (s *Service) persist(ctx context.Context, products []domain.Product, sales []domain.Sale) error {
	if err := s.productRepo.SaveAll(ctx, products); err != nil {
		return err
	}
	if err := s.saleRepo.SaveAll(ctx, sales); err != nil {
		return err
	}
	return s.stockRepo.SavePlaceholder(ctx)
}

func (s *Service) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// ListProducts retorna uma cópia do catálogo na ordem de cadastro.
func (s *Service) ListProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProducts(s.products)
}

// SellableProducts retorna apenas os produtos com estoque disponível.
func (s *Service) SellableProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Product{}
	for _, p := range s.products {
		if p.StockQuantity > 0 {
			out = append(out, p)
		}
	}
	return out
}

// ListSales retorna uma cópia do histórico na ordem de registro.
func (s *Service) ListSales() []domain.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySales(s.sales)
}

// Snapshot devolve cópias consistentes das duas coleções (leitura para dashboard e gráficos).
func (s *Service) Snapshot() ([]domain.Product, []domain.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProducts(s.products), copySales(s.sales)
}

func copyProducts(in []domain.Product) []domain.Product {
	out := make([]domain.Product, len(in))
	copy(out, in)
	return out
}

func copySales(in []domain.Sale) []domain.Sale {
	out := make([]domain.Sale, len(in))
	copy(out, in)
	return out
}

func indexOfProduct(products []domain.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
