// Package main provides data seeding for Tracklite.
//
// The server seeds the phase catalog on startup; this command performs the
// same bootstrap explicitly and additionally creates a default admin user,
// which is useful for fresh environments and CI databases.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/internal/auth"
	"tracklite.io/tracklite/internal/config"
	"tracklite.io/tracklite/internal/infrastructure"
	"tracklite.io/tracklite/internal/pkg/logger"
	"tracklite.io/tracklite/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Database and River migrations are expected to be executed before seeding.
	// This command only performs idempotent data bootstrap.

	if err := service.SeedPhases(ctx, client); err != nil {
		return fmt.Errorf("seed phases: %w", err)
	}

	if err := seedDefaultAdmin(ctx, client); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// seedDefaultAdmin creates the default admin account. The password comes from
// SEED_ADMIN_PASSWORD when set, otherwise "admin" is used so that fresh local
// environments stay usable. Idempotent: an existing admin is left untouched.
func seedDefaultAdmin(ctx context.Context, client *ent.Client) error {
	soeid := envOr("SEED_ADMIN_SOEID", "admin")
	password := envOr("SEED_ADMIN_PASSWORD", "admin")

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	_, err = client.User.Create().
		SetID(id.String()).
		SetSoeid(soeid).
		SetEmail(soeid + "@localhost").
		SetDisplayName("Default Administrator").
		SetPasswordHash(hash).
		SetRole("admin").
		Save(ctx)
	if err != nil {
		// Idempotent: if the admin already exists, skip (ON CONFLICT DO NOTHING equivalent)
		if ent.IsConstraintError(err) {
			logger.Info("Default admin already exists, skipping", zap.String("soeid", soeid))
			return nil
		}
		return fmt.Errorf("create default admin: %w", err)
	}

	logger.Info("Seeded default admin user", zap.String("soeid", soeid))
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
