package graph

import (
	"context"

	"eats-backend/models"
)

type contextKey string

const userContextKey contextKey = "user"

// WithUser attaches the authenticated user to a request context. The auth
// middleware calls this before any resolver runs.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}
