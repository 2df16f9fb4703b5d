package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"govendas/internal/domain"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func sampleSale() domain.Sale {
	return domain.Sale{
		ID:       "s1",
		Customer: "Bo",
		Items: []domain.LineItem{
			{ProductID: "p1", ProductName: "Gadget", Quantity: 2, UnitPrice: decimal.NewFromInt(5), Subtotal: decimal.NewFromInt(10)},
			{ProductID: "p2", ProductName: "Widget", Quantity: 1, UnitPrice: decimal.NewFromInt(3), Subtotal: decimal.NewFromInt(3)},
		},
		Total:      decimal.NewFromInt(13),
		OccurredAt: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		Status:     domain.SaleStatusCompleted,
	}
}

func TestPublishSaleCreated_WritesKeyedMessage(t *testing.T) {
	w := new(MockWriter)
	var sent []kafka.Message
	w.On("WriteMessages", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).([]kafka.Message)
	}).Return(nil)

	require.NoError(t, NewKafkaPublisherFrom(w).PublishSaleCreated(context.Background(), sampleSale()))

	require.Len(t, sent, 1)
	assert.Equal(t, "s1", string(sent[0].Key))

	var evt map[string]interface{}
	require.NoError(t, json.Unmarshal(sent[0].Value, &evt))
	assert.Equal(t, "Bo", evt["customer"])
	assert.Equal(t, float64(13), evt["total"])
	assert.Equal(t, float64(3), evt["item_count"])
	w.AssertExpectations(t)
}

func TestPublishSaleCreated_WrapsWriterError(t *testing.T) {
	w := new(MockWriter)
	w.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	err := NewKafkaPublisherFrom(w).PublishSaleCreated(context.Background(), sampleSale())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.PublishSaleCreated(context.Background(), sampleSale()))
	assert.NoError(t, p.Close())
}
