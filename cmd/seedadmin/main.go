// Seeds the default admin account. Safe to run repeatedly; an existing
// admin with the same email is left untouched.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"hunarhub/internal/data/entity"
	"hunarhub/internal/data/repository"
	"hunarhub/pkg/database"
	"hunarhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	name := envOr("ADMIN_NAME", "Admin")
	email := envOr("ADMIN_EMAIL", "admin@hunarhub.local")
	password := envOr("ADMIN_PASSWORD", "Admin@123")

	repo := repository.NewRepository(db, logger)

	existing, err := repo.User.FindByEmail(ctx, email)
	if err != nil {
		logger.Fatal("Failed to check admin account", zap.Error(err))
	}
	if existing != nil {
		logger.Info("Admin account already present", zap.String("email", email))
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		logger.Fatal("Failed to hash admin password", zap.Error(err))
	}

	now := time.Now()
	admin := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}

	// The unique index covers the race with a concurrent seed run
	if err := repo.User.Create(ctx, admin); err != nil {
		logger.Fatal("Failed to create admin account", zap.Error(err))
	}

	logger.Info("Admin account created",
		zap.String("user_id", admin.ID.String()),
		zap.String("email", email),
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
