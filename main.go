package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/niroj-tamang6988/RNJLogistic/config"
	"github.com/niroj-tamang6988/RNJLogistic/handlers"
	"github.com/niroj-tamang6988/RNJLogistic/routes"
	"github.com/niroj-tamang6988/RNJLogistic/store"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := store.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	h := handlers.New(store.New(db), cfg)

	// Default middleware: logger + recovery
	r := gin.Default()

	// CORS middleware for frontend integration
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
			"service": "RNJLogistic Dispatch API",
			"version": "1.0.0",
		})
	})

	// Uploaded profile photos are served straight from disk
	r.Static("/uploads", cfg.UploadDir)

	routes.Setup(r, h, cfg.JWTSecret)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
