package stock

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"govendas/internal/domain"
	"govendas/internal/pkg/logger"
)

type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) AdjustStock(ctx context.Context, id string, raw string) (domain.Product, error) {
	args := m.Called(ctx, id, raw)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockStockService) StockLevels() []domain.StockLevel {
	return m.Called().Get(0).([]domain.StockLevel)
}

func TestRawQuantity(t *testing.T) {
	cases := map[string]string{
		`{"quantity":"12"}`:   "12",
		`{"quantity":12}`:     "12",
		`{"quantity":" 7 "}`:  " 7 ",
		`{"quantity":"doze"}`: "doze",
	}
	for body, want := range cases {
		var req adjustRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		got, err := req.rawQuantity()
		require.NoError(t, err, body)
		assert.Equal(t, want, got, body)
	}

	var empty adjustRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	_, err := empty.rawQuantity()
	assert.Error(t, err)
}

func TestAdjustStockHandler(t *testing.T) {
	svc := new(MockStockService)
	svc.On("AdjustStock", mock.Anything, "p1", "12").Return(domain.Product{ID: "p1", StockQuantity: 12}, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /v1/products/{id}/stock", NewHandler(svc, logger.NewNop()).AdjustStockHandler)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/products/p1/stock", strings.NewReader(`{"quantity":"12"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stock_quantity":12`)
	svc.AssertExpectations(t)
}

func TestAdjustStockHandler_MissingQuantity(t *testing.T) {
	svc := new(MockStockService)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).AdjustStockHandler(rec, httptest.NewRequest(http.MethodPut, "/v1/products/p1/stock", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
}
