package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/interfaces/http/response"
)

// DefaultLimiterIdleTTL is how long an IP's bucket survives without traffic.
const DefaultLimiterIdleTTL = 10 * time.Minute

type ipBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP. Buckets idle longer
// than idleTTL are swept on a later request, at most once per idleTTL.
type IPRateLimiter struct {
	mu        sync.Mutex
	m         map[string]*ipBucket
	r         rate.Limit
	b         int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewIPRateLimiter(reqPerSec float64, burst int) *IPRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &IPRateLimiter{
		m:         make(map[string]*ipBucket),
		r:         rate.Limit(reqPerSec),
		b:         burst,
		idleTTL:   DefaultLimiterIdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *IPRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	if bucket, ok := l.m[ip]; ok {
		bucket.lastSeen = now
		return bucket.lim
	}
	bucket := &ipBucket{lim: rate.NewLimiter(l.r, l.b), lastSeen: now}
	l.m[ip] = bucket
	return bucket.lim
}

// sweep drops idle buckets. Callers hold l.mu.
func (l *IPRateLimiter) sweep(now time.Time) {
	for ip, bucket := range l.m {
		if now.Sub(bucket.lastSeen) >= l.idleTTL {
			delete(l.m, ip)
		}
	}
	l.lastSweep = now
}

// Len reports how many client buckets are tracked.
func (l *IPRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.m)
}

// Allow reports whether ip may make another request now.
func (l *IPRateLimiter) Allow(ip string) bool {
	return l.limiterFor(ip).Allow()
}

// Middleware rejects requests over the limit with 429. A zero rate disables limiting.
func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.r <= 0 {
			c.Next()
			return
		}
		if !l.Allow(c.ClientIP()) {
			response.Error(c, domainerrors.TooManyRequests("rate limit exceeded, slow down"))
			c.Abort()
			return
		}
		c.Next()
	}
}
