package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hongminglow/kanizsa-users/internal/http/respond"
	"github.com/hongminglow/kanizsa-users/internal/models"
)

type contextKey string

const userContextKey contextKey = "user"

// Authorizer resolves a bearer token to a user.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (models.User, error)
}

// RequireAuth rejects requests without a valid bearer token before they
// reach next. The resolved user is available through UserFromContext.
func RequireAuth(authorizer Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				respond.Error(w, http.StatusUnauthorized, "authorization header required")
				return
			}

			user, err := authorizer.Authorize(r.Context(), token)
			if err != nil {
				respond.ServiceError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user stored by RequireAuth.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
