package middleware

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter enforces per-IP fixed-window request limits backed by redis.
// A nil client disables limiting, matching how the provider credentials
// degrade when unset.
type RateLimiter struct {
	rdb *redis.Client
}

func NewRateLimiter(rdb *redis.Client) *RateLimiter {
	return &RateLimiter{rdb: rdb}
}

// Limit allows perMinute requests per client IP per route within each
// one-minute window. Redis errors fail open; the limiter protects quota,
// not correctness.
func (l *RateLimiter) Limit(route string, perMinute int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil || l.rdb == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			window := time.Now().Unix() / 60
			key := fmt.Sprintf("ratelimit:%s:%s:%d", route, clientIP(r), window)

			count, err := l.rdb.Incr(r.Context(), key).Result()
			if err != nil {
				log.Printf("rate limiter unavailable, allowing request: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				l.rdb.Expire(r.Context(), key, time.Minute)
			}
			if count > int64(perMinute) {
				w.Header().Set("Retry-After", "60")
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// First hop only.
		for i := 0; i < len(fwd); i++ {
			if fwd[i] == ',' {
				return fwd[:i]
			}
		}
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
