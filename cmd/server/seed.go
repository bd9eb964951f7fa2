package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Karlyle101/tip-me-api/internal/auth"
	"github.com/Karlyle101/tip-me-api/internal/config"
	"github.com/Karlyle101/tip-me-api/internal/database"
	"github.com/Karlyle101/tip-me-api/internal/models"
	"github.com/Karlyle101/tip-me-api/internal/repository"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the demo barista and admin accounts",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal("Failed to load configuration:", err)
		}

		db, err := database.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		if err := database.Migrate(db); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		userRepo := repository.NewUserRepository(db)

		seeds := []struct {
			email    string
			password string
			name     string
			role     models.Role
			handle   string
		}{
			{"barista@example.com", "password123", "Demo Barista", models.RoleBarista, "demo-barista"},
			{"admin@example.com", "adminpassword123", "Admin", models.RoleAdmin, "admin"},
		}

		for _, s := range seeds {
			existing, err := userRepo.FindByEmail(s.email)
			if err != nil {
				log.Fatal("Seed lookup failed:", err)
			}
			if existing != nil {
				log.Printf("User %s already exists, skipping", s.email)
				continue
			}

			hash, err := auth.HashPassword(s.password, cfg.Auth.BcryptCost)
			if err != nil {
				log.Fatal("Failed to hash seed password:", err)
			}

			user := &models.User{
				Email:        s.email,
				PasswordHash: hash,
				Name:         s.name,
				Role:         s.role,
				Handle:       s.handle,
			}
			if err := userRepo.Create(user); err != nil {
				log.Fatal("Failed to create seed user:", err)
			}
			log.Printf("Created %s (%s)", s.email, s.role)
		}
	},
}
