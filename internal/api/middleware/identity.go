package middleware

import (
	"context"
	"net/http"

	"github.com/partygamehq/partygame-go/internal/api/apierr"
	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/services/identity"
)

type contextKey string

const userContextKey contextKey = "user"

// Identity extracts the caller's display name into the request context.
// The name may be absent; handlers that need one use RequireName.
func Identity(ids *identity.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), userContextKey, ids.FromRequest(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireName rejects requests that carry no display name
func RequireName() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if UserName(r.Context()) == "" {
				apierr.WriteError(w, model.ErrNoIdentity)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserName returns the caller's display name from the context, or ""
func UserName(ctx context.Context) string {
	name, _ := ctx.Value(userContextKey).(string)
	return name
}

// MustUserName returns the caller's display name or panics.
// Only for handlers behind RequireName.
func MustUserName(ctx context.Context) string {
	name := UserName(ctx)
	if name == "" {
		panic("no user in context - identity middleware not applied?")
	}
	return name
}
