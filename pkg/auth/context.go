// Package auth carries the authenticated-user context set by the HTTP
// middleware and read by handlers.
package auth

import (
	"context"

	"hai-backend/pkg/errors"
)

type contextKey string

const userContextKey contextKey = "user"

// UserContext holds the identity extracted from a verified bearer token.
type UserContext struct {
	UserID string
	Email  string
}

// WithUser returns a context carrying the user identity.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext returns the authenticated user, or an unauthorized
// error when the request was not authenticated.
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, errors.NewUnauthorizedError("no authenticated user in context")
	}
	return user, nil
}
