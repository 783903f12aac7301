package middleware

import (
	"context"
	"net/http"

	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/services/identity"
)

type contextKey string

const userContextKey contextKey = "user"

// CurrentUser places the signed in user, if any, in the request context.
// The board is readable without a session.
func CurrentUser(identityService *identity.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, ok := identityService.CurrentUser(); ok {
				r = r.WithContext(context.WithValue(r.Context(), userContextKey, &user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUser returns the signed in user, or nil for anonymous visitors
func GetUser(ctx context.Context) *model.SessionUser {
	user, _ := ctx.Value(userContextKey).(*model.SessionUser)
	return user
}
