package middleware

import (
	"net"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"postboard/pkg/auth"
	"postboard/pkg/errors"
)

// RateLimit applies the per-IP limiter. Run it after chi's RealIP so proxied clients are keyed correctly.
func RateLimit(limiter *auth.IPRateLimiter, errHandler *errors.ErrorHandler, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				// A cancelled request is not worth answering
				logger.Debug("Rate limiter error", zap.Error(err))
				return
			}
			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(limiter.Window().Seconds())))
				errHandler.Handle(w, r, errors.NewRateLimitError(limiter.Limit(), limiter.Window().String()))
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
