package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nyumbasure/backend/internal/auth"
	"github.com/nyumbasure/backend/internal/config"
	"github.com/nyumbasure/backend/internal/db"
	"github.com/nyumbasure/backend/internal/models"
	"github.com/nyumbasure/backend/internal/repositories"
	"github.com/nyumbasure/backend/migrations"
	"go.uber.org/zap"
)

// Bootstraps the first admin account directly against the database, for
// deployments where calling POST /admin/setup is not convenient.
func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Administrator", "admin display name")
	flag.Parse()

	log, _ := zap.NewProduction()
	defer log.Sync()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: create-admin -email <email> -password <password> [-name <name>]")
		os.Exit(2)
	}

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, int32(cfg.PostgresMaxConns), log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, migrations.FS, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	userRepo := repositories.NewUserRepo(pool)

	exists, err := userRepo.AdminExists(ctx)
	if err != nil {
		log.Fatal("admin existence check failed", zap.Error(err))
	}
	if exists {
		log.Info("admin account already exists, nothing to do")
		return
	}

	hash, err := auth.HashPassword(*password, cfg.BcryptCost)
	if err != nil {
		log.Fatal("password hash failed", zap.Error(err))
	}

	user := &models.User{Email: *email, PasswordHash: hash, Name: *name, Role: models.RoleAdmin}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatal("admin create failed", zap.Error(err))
	}

	log.Info("admin account created", zap.String("email", user.Email), zap.String("id", user.ID.String()))
}
