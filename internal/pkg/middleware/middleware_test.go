package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"govendas/internal/domain"
	"govendas/internal/pkg/logger"
	"govendas/internal/pkg/token"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) ValidateToken(tokenString string) (*token.CustomClaims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*token.CustomClaims)
	return claims, args.Error(1)
}

type MockCacheClient struct {
	mock.Mock
}

func (m *MockCacheClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
func (m *MockCacheClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}
func (m *MockCacheClient) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
func (m *MockCacheClient) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCacheClient) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return m.Called(ctx, key, expiration).Error(0)
}
func (m *MockCacheClient) Close() error { return m.Called().Error(0) }

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	h := NewAuthMiddleware(new(MockTokenService))(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sales", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := new(MockTokenService)
	tokens.On("ValidateToken", "ruim").Return(nil, errors.New("expirado"))

	req := httptest.NewRequest(http.MethodPost, "/v1/sales", nil)
	req.Header.Set("Authorization", "Bearer ruim")
	rec := httptest.NewRecorder()
	NewAuthMiddleware(tokens)(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthAndPermission(t *testing.T) {
	tokens := new(MockTokenService)
	tokens.On("ValidateToken", "admin-token").Return(&token.CustomClaims{UserID: "u1", Role: "admin"}, nil)
	tokens.On("ValidateToken", "user-token").Return(&token.CustomClaims{UserID: "u2", Role: "user"}, nil)

	var seen UserClaims
	final := func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetUserClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
	h := NewAuthMiddleware(tokens)(PermissionMiddleware(domain.RoleAdmin)(final))

	req := httptest.NewRequest(http.MethodDelete, "/v1/products/p1", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "u1", seen.UserID)

	req = httptest.NewRequest(http.MethodDelete, "/v1/products/p1", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestPermissionMiddleware_WithoutClaims(t *testing.T) {
	rec := httptest.NewRecorder()
	PermissionMiddleware(domain.RoleAdmin)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	client := new(MockCacheClient)
	key := RateLimitKeyPrefix + "10.0.0.1"
	client.On("Incr", mock.Anything, key).Return(int64(1), nil).Once()
	client.On("Expire", mock.Anything, key, time.Minute).Return(nil).Once()
	client.On("Incr", mock.Anything, key).Return(int64(2), nil).Once()
	client.On("Incr", mock.Anything, key).Return(int64(3), nil).Once()

	h := RateLimiter(client, 2, time.Minute, logger.NewNop())(http.HandlerFunc(okHandler))
	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	first := do()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, do().Code)

	third := do()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "0", third.Header().Get("X-RateLimit-Remaining"))
	client.AssertExpectations(t)
}

func TestRateLimiter_RedisError(t *testing.T) {
	client := new(MockCacheClient)
	client.On("Incr", mock.Anything, mock.Anything).Return(int64(0), errors.New("redis down"))

	rec := httptest.NewRecorder()
	RateLimiter(client, 2, time.Minute, logger.NewNop())(http.HandlerFunc(okHandler)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestLogger_PassesThroughStatus(t *testing.T) {
	h := RequestLogger(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
