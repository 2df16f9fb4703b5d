package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "govendas/internal/errors"
)

func TestMapToHTTPStatus_TypedErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"validation", apperror.NewValidationError("nome vazio"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", apperror.NewNotFoundError("produto x"), http.StatusNotFound, "NOT_FOUND"},
		{"insufficient stock", apperror.NewInsufficientStockError("p1", "Widget", 5, 3), http.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"},
		{"conflict", apperror.NewConflictError("email"), http.StatusConflict, "CONFLICT"},
		{"unauthorized", apperror.NewUnauthorizedError("token"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", apperror.NewForbiddenError("admin"), http.StatusForbidden, "FORBIDDEN"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, category, message := apperror.MapToHTTPStatus(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.category, category)
			assert.Equal(t, tc.err.Error(), message)
		})
	}
}

func TestMapToHTTPStatus_WrappedError(t *testing.T) {
	err := fmt.Errorf("falha ao registrar venda: %w", apperror.NewInsufficientStockError("p1", "Widget", 5, 3))

	status, category, message := apperror.MapToHTTPStatus(err)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", category)
	assert.Contains(t, message, "Widget")
}

func TestMapToHTTPStatus_InternalErrorHidesCause(t *testing.T) {
	err := apperror.NewDBError("Falha ao salvar produtos", fmt.Errorf("dial tcp: connection refused"))

	status, category, message := apperror.MapToHTTPStatus(err)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", category)
	assert.NotContains(t, message, "connection refused")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMapToHTTPStatus_UntypedError(t *testing.T) {
	status, category, _ := apperror.MapToHTTPStatus(fmt.Errorf("boom"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "UNKNOWN_ERROR", category)
}

func TestInsufficientStockError_Message(t *testing.T) {
	err := apperror.NewInsufficientStockError("p1", "Widget", 5, 3)

	assert.Equal(t, "Estoque insuficiente para Widget (solicitado: 5, disponível: 3)", err.Error())
}
