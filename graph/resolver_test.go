package graph

import (
	"context"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eats-backend/models"
	"eats-backend/pubsub"
)

// The schema and the root resolver have to agree on every field; parsing
// fails loudly when they drift apart.
func TestSchemaMatchesResolver(t *testing.T) {
	resolver := NewResolver(nil, nil, nil, nil, pubsub.NewHub())
	_, err := graphql.ParseSchema(Schema, resolver, graphql.UseFieldResolvers())
	require.NoError(t, err)
}

func TestAuthorize(t *testing.T) {
	r := NewResolver(nil, nil, nil, nil, pubsub.NewHub())
	owner := &models.User{ID: 1, Role: models.RoleOwner}

	_, err := r.authorize(context.Background())
	assert.EqualError(t, err, "Forbidden resource")

	ctx := WithUser(context.Background(), owner)

	user, err := r.authorize(ctx)
	require.NoError(t, err)
	assert.Equal(t, owner, user)

	user, err = r.authorize(ctx, models.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, owner, user)

	user, err = r.authorize(ctx, models.RoleClient, models.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, owner, user)

	_, err = r.authorize(ctx, models.RoleDelivery)
	assert.EqualError(t, err, "Forbidden resource")
}

func TestUserFromContext(t *testing.T) {
	assert.Nil(t, UserFromContext(context.Background()))

	user := &models.User{ID: 7}
	ctx := WithUser(context.Background(), user)
	assert.Equal(t, user, UserFromContext(ctx))
}
