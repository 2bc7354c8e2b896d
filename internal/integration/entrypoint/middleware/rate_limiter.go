package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/dto"
)

// window tracks the attempts of one client inside a fixed window.
type window struct {
	attempts int
	resetAt  time.Time
}

// RateLimiter is a fixed-window, per-client-IP limiter. A limiter with a
// non-positive limit lets every request through.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per period.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
	}
}

// Middleware returns a Gin middleware handler that enforces the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.allow(c.ClientIP()) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
			Error: "Too many requests. Please try again later.",
			Code:  string(domainerror.ErrCodeRateLimited),
		})
	}
}

func (rl *RateLimiter) allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || now.After(w.resetAt) {
		rl.windows[key] = &window{attempts: 1, resetAt: now.Add(rl.period)}
		rl.evictExpired(now)
		return true
	}

	if w.attempts >= rl.limit {
		return false
	}
	w.attempts++
	return true
}

// evictExpired drops windows that have already reset. Callers hold mu.
func (rl *RateLimiter) evictExpired(now time.Time) {
	for key, w := range rl.windows {
		if now.After(w.resetAt) {
			delete(rl.windows, key)
		}
	}
}
