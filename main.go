package main

import (
	"context"
	"log"
	"time"

	"healthcare_back_end_go/config"
	"healthcare_back_end_go/db"
	"healthcare_back_end_go/routes"
	"healthcare_back_end_go/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	r := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))

	pool, err := db.InitDatabase(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer pool.Close()

	store := storage.NewStore(pool)

	routes.SetupHealthRoutes(r)
	routes.SetupUserRoutes(r, store, cfg.JWTSecret)
	routes.SetupPatientRoutes(r, store, store, cfg.JWTSecret)
	routes.SetupDoctorRoutes(r, store, store, cfg.JWTSecret)
	routes.SetupMappingRoutes(r, store, store, store, store, cfg.JWTSecret)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
