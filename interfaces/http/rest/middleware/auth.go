package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"postboard/pkg/auth"
	"postboard/pkg/errors"
)

const bearerPrefix = "Bearer "

// TokenValidator validates bearer tokens
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// Authenticate rejects requests without a valid bearer token and stores the caller in the request context
func Authenticate(validator TokenValidator, errHandler *errors.ErrorHandler, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) || strings.TrimSpace(header[len(bearerPrefix):]) == "" {
				errHandler.HandleStatus(w, r, http.StatusUnauthorized, "Missing Authorization header")
				return
			}

			claims, err := validator.ValidateToken(header[len(bearerPrefix):])
			if err != nil {
				logger.Debug("Token rejected", zap.Error(err))
				errHandler.HandleStatus(w, r, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{
				UserID:   claims.Subject,
				Username: claims.Username,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
