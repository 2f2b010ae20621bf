package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/joho/godotenv"

	"eats-backend/config"
	"eats-backend/graph"
	"eats-backend/models"
	"eats-backend/pubsub"
	"eats-backend/repositories"
	"eats-backend/router"
	"eats-backend/services"
	"eats-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()
	utils.InitJWT()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Verification{},
		&models.Category{},
		&models.Restaurant{},
		&models.Dish{},
		&models.OrderItem{},
		&models.Order{},
		&models.Payment{},
	); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	userRepo := repositories.NewUserRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	dishRepo := repositories.NewDishRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	mailer := services.NewMailService(
		os.Getenv("MAILGUN_DOMAIN"),
		os.Getenv("MAILGUN_API_KEY"),
		os.Getenv("MAILGUN_FROM_EMAIL"),
	)

	hub := pubsub.NewHub()
	userService := services.NewUserService(userRepo, verificationRepo, mailer)
	restaurantService := services.NewRestaurantService(restaurantRepo, categoryRepo, dishRepo)
	orderService := services.NewOrderService(orderRepo, restaurantRepo, dishRepo, hub)
	paymentService := services.NewPaymentService(paymentRepo, restaurantRepo)

	sweeper := services.NewPromotionSweeper(restaurantRepo)
	sweeper.Start()
	defer sweeper.Stop()

	resolver := graph.NewResolver(userService, restaurantService, orderService, paymentService, hub)
	schema := graphql.MustParseSchema(graph.Schema, resolver, graphql.UseFieldResolvers())

	r := router.SetupRouter(schema, userService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Server running on :%s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatalf("Failed to start server: %v", err)
	}
}
