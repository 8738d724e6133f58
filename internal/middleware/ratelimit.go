package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dexboard/internal/domain/dto"
)

// Defaults for RateLimiter, per client IP.
const (
	DefaultRateLimit  = 60
	DefaultRateWindow = time.Minute
)

// client is one rate-limited IP: request count inside the current window.
type client struct {
	windowStart time.Time
	count       int
}

// limiter is a fixed-window, in-memory counter keyed by client IP.
// NOTE: state is per process; multi-instance deployments need a shared store.
type limiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   int
	window  time.Duration
	now     func() time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if window <= 0 {
		window = DefaultRateWindow
	}
	return &limiter{
		clients: make(map[string]*client),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// allow records a request from ip and reports whether it is within budget.
func (l *limiter) allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[ip]
	if !ok || now.Sub(cl.windowStart) > l.window {
		l.clients[ip] = &client{windowStart: now, count: 1}
		l.evict(now)
		return true
	}
	cl.count++
	return cl.count <= l.limit
}

// evict drops clients whose window expired long ago. Called with mu held.
func (l *limiter) evict(now time.Time) {
	for ip, cl := range l.clients {
		if now.Sub(cl.windowStart) > 2*l.window {
			delete(l.clients, ip)
		}
	}
}

// RateLimiter limits each client IP to DefaultRateLimit requests per
// DefaultRateWindow.
func RateLimiter() gin.HandlerFunc {
	return RateLimiterWith(DefaultRateLimit, DefaultRateWindow)
}

// RateLimiterWith limits each client IP to limit requests per window.
//
// Response when the limit is exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	{"message": "rate limit exceeded", "timestamp": "…"}
func RateLimiterWith(limit int, window time.Duration) gin.HandlerFunc {
	l := newLimiter(limit, window)
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.Header("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}
