package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"shiftpro_backend/internal/router"
	"shiftpro_backend/internal/storage"
	"shiftpro_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, relying on process environment", nil)
	}

	utils.SetJWTSecret(utils.Getenv("JWT_SECRET", "shiftpro-dev-secret-change-me"))

	// Open the on-disk store. A failed open degrades to an in-memory session;
	// the application still serves, it just loses persistence.
	dataPath := utils.Getenv("DATA_PATH", "shiftpro.db")
	store := storage.Open(dataPath)
	defer store.Close()
	utils.LogInfo("Storage initialized", map[string]interface{}{"path": dataPath})

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, store)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
