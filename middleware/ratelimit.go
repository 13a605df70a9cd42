package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter implements a per-IP token bucket.
type RateLimiter struct {
	tokens     map[string]float64
	lastRefill map[string]time.Time
	mu         sync.Mutex
	rate       float64 // tokens per second
	bucketSize float64
	lastPrune  time.Time
}

// NewRateLimiter creates a limiter refilling rate tokens per second up
// to bucketSize.
func NewRateLimiter(rate float64, bucketSize float64) *RateLimiter {
	return &RateLimiter{
		tokens:     make(map[string]float64),
		lastRefill: make(map[string]time.Time),
		rate:       rate,
		bucketSize: bucketSize,
		lastPrune:  time.Now(),
	}
}

// RateLimit rejects requests from clients that have drained their
// bucket.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rl.mu.Lock()
		now := time.Now()

		if _, exists := rl.lastRefill[ip]; !exists {
			rl.tokens[ip] = rl.bucketSize
			rl.lastRefill[ip] = now
		}

		elapsed := now.Sub(rl.lastRefill[ip])
		rl.tokens[ip] = min(rl.bucketSize, rl.tokens[ip]+elapsed.Seconds()*rl.rate)
		rl.lastRefill[ip] = now

		if rl.tokens[ip] < 1 {
			rl.mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}
		rl.tokens[ip]--

		if now.Sub(rl.lastPrune) > 10*time.Minute {
			rl.prune(now)
		}
		rl.mu.Unlock()

		c.Next()
	}
}

// prune drops buckets idle long enough to be full again. Caller holds
// the lock.
func (rl *RateLimiter) prune(now time.Time) {
	idle := time.Duration(rl.bucketSize/rl.rate) * time.Second
	for ip, last := range rl.lastRefill {
		if now.Sub(last) > idle {
			delete(rl.tokens, ip)
			delete(rl.lastRefill, ip)
		}
	}
	rl.lastPrune = now
}
