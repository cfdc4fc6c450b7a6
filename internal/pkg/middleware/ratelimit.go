package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"gofulfill/internal/pkg/cache"
	"gofulfill/internal/pkg/logger"
)

// RateLimiter aplica uma janela fixa de `limit` requisições por IP a cada `duration`.
// Falhas do cache não derrubam a API: a requisição segue e o erro é registrado.
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.GetInt(ctx, key)
			if err == cache.ErrCacheMiss {
				if setErr := client.Set(ctx, key, 1, duration); setErr != nil {
					log.Error("Falha ao iniciar janela de rate limit.", setErr)
				}
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
				next.ServeHTTP(w, r)
				return
			} else if err != nil {
				log.Error("Falha ao consultar rate limit.", err)
				next.ServeHTTP(w, r)
				return
			}

			if count >= limit {
				log.Warn("Rate limit excedido.", map[string]interface{}{"ip": ip, "limit": limit})
				w.Header().Set("X-RateLimit-Remaining", "0")
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			count, err = client.Incr(ctx, key)
			if err != nil {
				log.Error("Falha ao incrementar rate limit.", err)
			}
			remaining := limit - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			next.ServeHTTP(w, r)
		})
	}
}
