package middleware

import (
	"context"
	"net/http"

	"github.com/mcoot/foundry/internal/api/apierr"
	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/services/identity"
)

type contextKey string

const userContextKey contextKey = "user"

// Auth requires a signed in user. The acting user is always the identity
// service's current session.
func Auth(identityService *identity.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := identityService.CurrentUser()
			if !ok {
				apierr.WriteError(w, model.ErrNotAuthenticated)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires the user placed in the context by Auth to be a game master
func Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			apierr.WriteError(w, model.ErrNotAuthenticated)
			return
		}
		if !user.IsAdmin() {
			apierr.WriteError(w, model.ErrNotAdmin)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUser returns the authenticated user from the request context
func GetUser(ctx context.Context) (model.SessionUser, bool) {
	user, ok := ctx.Value(userContextKey).(model.SessionUser)
	return user, ok
}

// MustGetUser returns the authenticated user or panics
func MustGetUser(ctx context.Context) model.SessionUser {
	user, ok := GetUser(ctx)
	if !ok {
		panic("no user in context - auth middleware not applied?")
	}
	return user
}
