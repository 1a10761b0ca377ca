package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/jwt"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type principalKey struct{}

// WithPrincipal stores the authenticated user id in ctx and hands it to the
// access log of the enclosing request.
func WithPrincipal(ctx context.Context, userID uuid.UUID) context.Context {
	if info := requestInfoFromContext(ctx); info != nil {
		info.userID = userID
	}
	return context.WithValue(ctx, principalKey{}, userID)
}

// PrincipalFromContext returns the user id placed by AuthMiddleware.
func PrincipalFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(principalKey{}).(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

// AuthMiddleware rejects requests without a valid bearer token and puts the
// token's user id into the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, claims.UserID)))
		})
	}
}
