package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxTrackedClients = 10000
	clientIdleTTL     = 1 * time.Hour
)

// RateLimiter hands each client a token bucket of capacity requests that
// refills over window. Idle clients are forgotten after an hour.
type RateLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters *expirable.LRU[string, *rate.Limiter]
	now      func() time.Time
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	if capacity < 1 {
		capacity = 1
	}
	return &RateLimiter{
		limit:    rate.Every(window / time.Duration(capacity)),
		burst:    capacity,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientIdleTTL),
		now:      time.Now,
	}
}

func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	lim, ok := r.limiters.Get(key)
	if !ok {
		lim = rate.NewLimiter(r.limit, r.burst)
	}
	// re-adding pushes the idle deadline forward
	r.limiters.Add(key, lim)
	r.mu.Unlock()

	return lim.AllowN(r.now(), 1)
}

// Clients reports how many clients currently have a bucket.
func (r *RateLimiter) Clients() int {
	return r.limiters.Len()
}

// RateLimit answers 429 once a client IP has used up its window.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, please try again later"})
			return
		}
		c.Next()
	}
}
