package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// pageLimiterTTL is how long an idle visitor's bucket is kept.
const pageLimiterTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PageRateLimiter throttles page requests per client IP with a token
// bucket. The booking endpoint has its own fixed-window limiter.
type PageRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	every    time.Duration
	burst    int
	skip     []string
	now      func() time.Time

	// Metrics, when set, counts rejections.
	Metrics *Metrics
}

// NewPageRateLimiter allows perMinute requests per IP with the given burst.
// Paths starting with any of skip are not throttled.
func NewPageRateLimiter(perMinute, burst int, skip ...string) *PageRateLimiter {
	if perMinute <= 0 {
		perMinute = 200
	}
	if burst <= 0 {
		burst = perMinute
	}
	return &PageRateLimiter{
		visitors: make(map[string]*visitor),
		every:    time.Minute / time.Duration(perMinute),
		burst:    burst,
		skip:     skip,
		now:      time.Now,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (p *PageRateLimiter) getLimiter(ip string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, exists := p.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(p.every), p.burst)}
		p.visitors[ip] = v
	}
	v.lastSeen = p.now()
	return v.limiter
}

// Sweep drops visitors idle for longer than pageLimiterTTL and returns how
// many were removed.
func (p *PageRateLimiter) Sweep(now time.Time) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	removed := 0
	for ip, v := range p.visitors {
		if now.Sub(v.lastSeen) > pageLimiterTTL {
			delete(p.visitors, ip)
			removed++
		}
	}
	return removed
}

func (p *PageRateLimiter) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.visitors)
}

func (p *PageRateLimiter) skipped(path string) bool {
	for _, prefix := range p.skip {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Middleware limits requests per IP address.
func (p *PageRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p.skipped(c.Request.URL.Path) {
			c.Next()
			return
		}
		ip := getClientIP(c)
		if !p.getLimiter(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip), zap.String("path", c.Request.URL.Path))
			p.Metrics.RateLimitHit("page")
			c.Header("Retry-After", "60")
			c.Abort()
			c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}
		c.Next()
	}
}
