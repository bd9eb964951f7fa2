package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	_ "github.com/Karlyle101/tip-me-api/docs"
	"github.com/Karlyle101/tip-me-api/internal/config"
	"github.com/Karlyle101/tip-me-api/internal/database"
	"github.com/Karlyle101/tip-me-api/internal/observability"
	"github.com/Karlyle101/tip-me-api/internal/router"
)

// @title           Tip Me API
// @version         1.0
// @description     Tip collection for service workers
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal("Failed to load configuration:", err)
		}

		logger, err := observability.NewLogger(cfg.LogLevel)
		if err != nil {
			log.Fatal("Failed to build logger:", err)
		}
		defer logger.Sync()

		if cfg.UsingPlaceholderSecret() {
			logger.Warn("JWT_SECRET is the development placeholder; set a real secret before exposing this service")
		}

		gin.SetMode(cfg.GinMode)

		db, err := database.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		if err := database.Migrate(db); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		r := router.Build(cfg, router.Options{
			DB:     db,
			Logger: logger,
		})

		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Tip Me API listening on %s", addr)
		log.Fatal(r.Run(addr))
	},
}
