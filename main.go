package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/xumparim-tech/Zippida/config"
	"github.com/xumparim-tech/Zippida/handlers"
	"github.com/xumparim-tech/Zippida/repository"
	"github.com/xumparim-tech/Zippida/routes"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	db, err := config.InitDB(context.Background(), cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	logger.Info().Str("database", cfg.MongoDatabase).Msg("connected to MongoDB")

	users := &repository.UserRepository{Collection: db.Collection("users")}
	products := &repository.ProductRepository{Collection: db.Collection("products")}
	orders := &repository.OrderRepository{Collection: db.Collection("orders")}

	if err := users.EnsureIndexes(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("failed to create user indexes")
	}

	if mode := os.Getenv("GIN_MODE"); mode == "" {
		gin.SetMode(gin.DebugMode)
	}
	r := gin.Default()

	// CORS for the browser frontend
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Zippida Grocery API",
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Zippida server is running (MongoDB)")
	})

	routes.SetupRoutes(r, routes.Deps{
		Auth:     &handlers.AuthHandler{Users: users, Secret: cfg.JWTSecret},
		Products: &handlers.ProductHandler{Products: products},
		Orders:   &handlers.OrderHandler{Orders: orders},
		Seed:     &handlers.SeedHandler{Users: users, AdminPhone: cfg.AdminPhone, AdminPassword: cfg.AdminPassword},
		Users:    users,
		Secret:   cfg.JWTSecret,
	})

	logger.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
