package api

import (
	"log/slog"
	"net"
	"net/http"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/ChairulIkhsan23/niyyah-backend/pkg/httputil"
)

const limiterClients = 10000

// ipLimiter keeps a token bucket per client address. Least recently seen
// clients are evicted once the table is full.
type ipLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters *lru.Cache[string, *rate.Limiter]
}

func newIPLimiter(perSecond float64, burst int) *ipLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	cache, err := lru.New[string, *rate.Limiter](limiterClients)
	if err != nil {
		slog.Error("creating rate limiter table error", slog.String("error", err.Error()))
		return nil
	}
	return &ipLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: cache,
	}
}

func (l *ipLimiter) allow(key string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(key, limiter)
	}
	l.mu.Unlock()
	return limiter.Allow()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimitMiddleware throttles the public auth endpoints per client address.
func (s *Server) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.allow(clientIP(r)) {
			logger := GetLoggerFromCtx(r.Context())
			logger.Warn("rate limit exceeded")
			httputil.WriteErrorResponse(w, http.StatusTooManyRequests, message(r, msgTooManyRequests), nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
