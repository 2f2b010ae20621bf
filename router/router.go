package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"eats-backend/graph"
	"eats-backend/middlewares"
	"eats-backend/services"
	"eats-backend/utils"
)

// SetupRouter wires the GraphQL endpoint (POST for queries/mutations,
// websocket upgrade for subscriptions) and the health check.
func SetupRouter(schema *graphql.Schema, users *services.UserService) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	r.GET("/health", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "healthy", gin.H{"service": "eats-backend"})
	})
	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, errors.New("route not found"))
	})

	gqlHandler := &relay.Handler{Schema: schema}
	wsHandler := graph.NewSubscriptionHandler(schema, users)
	limiter := middlewares.NewRateLimiter(50, 100)

	r.POST("/graphql", limiter.RateLimit(), middlewares.GraphQLAuth(users), gin.WrapH(gqlHandler))
	r.GET("/graphql", wsHandler.Handle)

	return r
}
