package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/code"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/response"
)

// TokenBucket is a simple token-bucket rate limiter
type TokenBucket struct {
	rate       float64   // tokens refilled per second
	capacity   int       // bucket capacity
	tokens     float64   // current token count
	lastRefill time.Time // time of the last refill
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket limiter
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow tries to take a token
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

// Limiter registries
var (
	ipLimiters     = make(map[string]*TokenBucket)
	ipLimitersMu   sync.RWMutex
	pathLimiters   = make(map[string]*TokenBucket)
	pathLimitersMu sync.RWMutex
)

func getIPLimiter(ip string, rate float64, burst int) *TokenBucket {
	ipLimitersMu.RLock()
	limiter, exists := ipLimiters[ip]
	ipLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(rate, burst)
		ipLimitersMu.Lock()
		ipLimiters[ip] = limiter
		ipLimitersMu.Unlock()
	}

	return limiter
}

func getPathLimiter(path string, rate float64, burst int) *TokenBucket {
	pathLimitersMu.RLock()
	limiter, exists := pathLimiters[path]
	pathLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(rate, burst)
		pathLimitersMu.Lock()
		pathLimiters[path] = limiter
		pathLimitersMu.Unlock()
	}

	return limiter
}

// IPRateLimiter limits requests per client IP
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getIPLimiter(c.ClientIP(), rate, burst)
		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PathRateLimiter limits requests per URL path
func PathRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getPathLimiter(c.Request.URL.Path, rate, burst)
		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Periodically drop idle limiters so the registries do not grow unbounded
func init() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			ipLimitersMu.Lock()
			ipLimiters = make(map[string]*TokenBucket)
			ipLimitersMu.Unlock()

			pathLimitersMu.Lock()
			pathLimiters = make(map[string]*TokenBucket)
			pathLimitersMu.Unlock()
		}
	}()
}
