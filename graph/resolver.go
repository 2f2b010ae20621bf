package graph

import (
	"context"
	"errors"

	"eats-backend/models"
	"eats-backend/pubsub"
	"eats-backend/services"
)

// errForbidden is the guard failure surfaced as a GraphQL error, outside
// the {ok, error} envelope.
var errForbidden = errors.New("Forbidden resource")

// Resolver is the root resolver; one instance serves the whole schema.
// Collaborators stay unexported so field resolution never picks them up.
type Resolver struct {
	users       *services.UserService
	restaurants *services.RestaurantService
	orders      *services.OrderService
	payments    *services.PaymentService
	hub         *pubsub.Hub
}

func NewResolver(users *services.UserService, restaurants *services.RestaurantService, orders *services.OrderService, payments *services.PaymentService, hub *pubsub.Hub) *Resolver {
	return &Resolver{
		users:       users,
		restaurants: restaurants,
		orders:      orders,
		payments:    payments,
		hub:         hub,
	}
}

// authorize resolves the caller from the request context and checks it
// against the allowed roles. No roles means any authenticated user.
func (r *Resolver) authorize(ctx context.Context, roles ...models.UserRole) (*models.User, error) {
	user := UserFromContext(ctx)
	if user == nil {
		return nil, errForbidden
	}
	if len(roles) == 0 {
		return user, nil
	}
	for _, role := range roles {
		if user.Role == role {
			return user, nil
		}
	}
	return nil, errForbidden
}
