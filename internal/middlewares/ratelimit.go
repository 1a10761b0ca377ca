package middlewares

import (
	"net"
	"net/http"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
)

// Allower decides whether a request for key may proceed.
type Allower interface {
	Allow(key string) bool
}

// RateLimitMiddleware answers 429 once the client IP has used up its budget.
// Run it after chi's RealIP so proxied clients are told apart.
func RateLimitMiddleware(limiter Allower) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			if !limiter.Allow(key) {
				logger.Log.Warnw("rate limit exceeded", "client", key, "uri", r.RequestURI)
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
