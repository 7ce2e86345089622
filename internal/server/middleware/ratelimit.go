package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/gophnotes/pkg/api"
)

// bucket токены одного клиента
type bucket struct {
	lastSeen time.Time
	tokens   float64
}

// RateLimiter is a per-client token bucket. Each client may burst up to
// limit requests and regains limit tokens per window.
type RateLimiter struct {
	now        func() time.Time
	buckets    map[string]*bucket
	window     time.Duration
	limit      int
	trustProxy bool
	mu         sync.Mutex
}

// RateLimiterOption настраивает RateLimiter
type RateLimiterOption func(*RateLimiter)

// WithTrustProxy берет адрес клиента из X-Forwarded-For
// Включать только за доверенным reverse proxy
func WithTrustProxy() RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.trustProxy = true
	}
}

// withClock подменяет часы в тестах
func withClock(now func() time.Time) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.now = now
	}
}

// NewRateLimiter creates a limiter allowing limit requests per window
func NewRateLimiter(limit int, window time.Duration, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		now:     time.Now,
		buckets: make(map[string]*bucket),
		window:  window,
		limit:   limit,
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// Allow списывает токен клиента. Если токенов нет, возвращает false
// и время до появления следующего.
func (rl *RateLimiter) Allow(client string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	limit := float64(rl.limit)
	window := float64(rl.window)

	b, ok := rl.buckets[client]
	if !ok {
		b = &bucket{tokens: limit, lastSeen: now}
		rl.buckets[client] = b
	} else {
		// Сначала умножаем, потом делим: на границе интервала результат точный
		elapsed := float64(now.Sub(b.lastSeen))
		b.tokens = math.Min(limit, b.tokens+elapsed*limit/window)
		b.lastSeen = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}

	wait := time.Duration(math.Ceil((1 - b.tokens) * window / limit))
	return false, wait
}

// Run periodically forgets clients idle for longer than a window
// Blocks until ctx is cancelled
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.prune()
		}
	}
}

func (rl *RateLimiter) prune() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window)
	for client, b := range rl.buckets {
		// За окно бездействия бакет гарантированно полон
		if b.lastSeen.Before(cutoff) {
			delete(rl.buckets, client)
		}
	}
}

// clients число отслеживаемых клиентов
func (rl *RateLimiter) clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

// clientIP определяет адрес клиента для учета лимита
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if rl.trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit rejects requests over the limiter's budget with 429 and a
// Retry-After header
func RateLimit(rl *RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := rl.clientIP(r)

			ok, wait := rl.Allow(client)
			if !ok {
				logger.Warn("Rate limit exceeded",
					"client", client,
					"method", r.Method,
					"path", r.URL.Path,
				)

				seconds := int(math.Ceil(wait.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{
					Error:   http.StatusText(http.StatusTooManyRequests),
					Message: "rate limit exceeded",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
