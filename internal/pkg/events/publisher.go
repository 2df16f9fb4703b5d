// Package events publica notificações de vendas concluídas para consumidores externos.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"govendas/internal/domain"
)

// SaleCreated é o payload publicado após cada venda gravada com sucesso.
type SaleCreated struct {
	SaleID     string          `json:"sale_id"`
	Customer   string          `json:"customer"`
	Total      decimal.Decimal `json:"total"`
	ItemCount  int             `json:"item_count"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewSaleCreated monta o evento a partir da venda.
func NewSaleCreated(sale domain.Sale) SaleCreated {
	units := 0
	for _, it := range sale.Items {
		units += it.Quantity
	}
	return SaleCreated{
		SaleID:     sale.ID,
		Customer:   sale.Customer,
		Total:      sale.Total,
		ItemCount:  units,
		OccurredAt: sale.OccurredAt,
	}
}

// Publisher é o contrato usado pelo serviço de inventário.
type Publisher interface {
	PublishSaleCreated(ctx context.Context, sale domain.Sale) error
	Close() error
}

// MessageWriter é o subconjunto de *kafka.Writer que usamos.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher grava eventos num tópico Kafka, com o ID da venda como chave.
type KafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaPublisher cria um publisher para o broker e tópico informados.
func NewKafkaPublisher(broker, topic string) *KafkaPublisher {
	return NewKafkaPublisherFrom(&kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	})
}

// NewKafkaPublisherFrom embrulha um writer já configurado.
func NewKafkaPublisherFrom(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// PublishSaleCreated serializa e envia o evento sale.created.
func (p *KafkaPublisher) PublishSaleCreated(ctx context.Context, sale domain.Sale) error {
	payload, err := json.Marshal(NewSaleCreated(sale))
	if err != nil {
		return fmt.Errorf("falha ao serializar evento de venda: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(sale.ID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("sale.created")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("falha ao publicar evento de venda %s: %w", sale.ID, err)
	}
	return nil
}

// Close libera as conexões do writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher descarta os eventos (Kafka não configurado).
type NopPublisher struct{}

func (NopPublisher) PublishSaleCreated(ctx context.Context, sale domain.Sale) error { return nil }
func (NopPublisher) Close() error                                                   { return nil }
