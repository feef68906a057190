// ABOUTME: Per-client rate limiting for catalog and enrichment endpoints
// ABOUTME: Uses fixed windows keyed by client IP with background expiry

package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter enforces a fixed-window request budget per client key.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
}

type clientWindow struct {
	hits     int
	openedAt time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window.
// Expired client windows are swept in the background.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
	}

	go rl.sweepExpired()

	return rl
}

func (rl *RateLimiter) sweepExpired() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		rl.mu.Lock()
		for key, cw := range rl.clients {
			if now.Sub(cw.openedAt) > rl.window {
				delete(rl.clients, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow reports whether the client identified by key has budget left
// in its current window, opening a fresh window when needed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	cw, ok := rl.clients[key]
	if !ok || now.Sub(cw.openedAt) > rl.window {
		rl.clients[key] = &clientWindow{hits: 1, openedAt: now}
		return true
	}

	if cw.hits >= rl.limit {
		return false
	}

	cw.hits++
	return true
}

// extractIP resolves the client address, trusting proxy headers when present.
// X-Forwarded-For yields the last hop, the one appended by our own proxy.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.LastIndexAny(xff, ", "); i >= 0 {
			return xff[i+1:]
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}

// RateLimitMiddleware rejects requests over the per-client budget with 429.
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
			w.Header().Set("X-RateLimit-Window", limiter.window.String())

			if !limiter.Allow(extractIP(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", strconv.Itoa(int(limiter.window.Seconds())))
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"Too many requests","message":"Rate limit exceeded. Please try again later."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
