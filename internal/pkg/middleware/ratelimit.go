package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	apperror "govendas/internal/errors"
	"govendas/internal/pkg/cache"
	"govendas/internal/pkg/logger"
)

// RateLimitKeyPrefix prefixa os contadores por IP no Redis.
const RateLimitKeyPrefix = "govendas:rate-limit:"

// RateLimiter limita cada IP a limit requisições por janela fixa de duration.
// O contador nasce com INCR e recebe o TTL na primeira requisição da janela.
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := RateLimitKeyPrefix + ip
			ctx := r.Context()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Error("Falha ao incrementar contador de rate limit.", err)
				writeError(w, apperror.NewInternalError("Falha no rate limit.", err))
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, key, duration); err != nil {
					log.Warn("Falha ao definir TTL do rate limit.", map[string]interface{}{"key": key, "error": err.Error()})
				}
			}

			remaining := limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > limit {
				log.Info("Rate limit excedido.", map[string]interface{}{"ip": ip, "count": count})
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"code":429,"category":"RATE_LIMITED","message":"Limite de requisições excedido."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
