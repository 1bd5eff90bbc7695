package main

import (
	"context"                    // Context for the Redis ping
	"log"                        // Startup logging
	"net/http"                   // HTTP status codes
	"tacash/internal/api"        // API handlers
	"tacash/internal/config"     // Configuration
	"tacash/internal/ledger"     // Ledger core
	"tacash/internal/middleware" // Middleware
	"tacash/internal/store"      // Store implementations
	"tacash/internal/utils"      // Credential hashing

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database. TranslateError maps driver duplicate-key
	// errors to gorm.ErrDuplicatedKey, which the account store relies on.
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Wire the ledger core to its stores and the bcrypt capability
	accounts := store.NewAccountStore(db)
	moves := store.NewLedgerStore(db)
	history := store.NewTransactionStore(db)
	svc := ledger.NewService(accounts, moves, history, utils.VerifySecret, utils.HashSecret)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Health route
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "taCash is running")
	})

	// Public routes
	r.POST("/register", api.RegisterHandler(svc, cfg.JWTSecret))          // Registration endpoint
	r.POST("/login", api.LoginHandler(svc, cfg.JWTSecret))                // Login endpoint
	r.GET("/users/role/:email", api.RoleLookupHandler(svc, redisClient))  // Public role lookup

	// Authenticated routes (protected by JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	auth.GET("/users/me", api.CurrentAccountHandler(svc, redisClient))  // Current account endpoint
	auth.POST("/wallet/send", api.SendMoneyHandler(svc, redisClient))   // Peer transfer endpoint
	auth.POST("/wallet/cashout", api.CashOutHandler(svc, redisClient))  // Cash-out endpoint
	auth.GET("/history/:email", api.HistoryHandler(svc, redisClient))   // Transaction history endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(accounts))
	adminGroup.GET("/users", api.ListAccountsHandler(svc, redisClient))             // List accounts endpoint
	adminGroup.PATCH("/users/:email", api.ApproveHandler(svc, redisClient))         // Approve endpoint
	adminGroup.GET("/transactions", api.ListTransactionsHandler(svc, redisClient))  // All transactions endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
