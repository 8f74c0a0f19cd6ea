package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/nyumbasure/backend/internal/config"
	"github.com/nyumbasure/backend/internal/db"
	apphttp "github.com/nyumbasure/backend/internal/http"
	"github.com/nyumbasure/backend/internal/http/handlers"
	"github.com/nyumbasure/backend/internal/repositories"
	"github.com/nyumbasure/backend/internal/services"
	"github.com/nyumbasure/backend/migrations"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, int32(cfg.PostgresMaxConns), log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, migrations.FS, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	agentRepo := repositories.NewAgentRepo(pool)
	listingRepo := repositories.NewListingRepo(pool)
	reportRepo := repositories.NewReportRepo(pool)
	escrowRepo := repositories.NewEscrowRepo(pool)
	activityRepo := repositories.NewActivityRepo(pool)

	// Services
	listingService := services.NewListingService(listingRepo, agentRepo, reportRepo, activityRepo, log)
	agentService := services.NewAgentService(agentRepo, activityRepo, log)
	escrowService := services.NewEscrowService(escrowRepo, listingRepo, activityRepo, cfg, log)
	statsService := services.NewStatsService(listingRepo, agentRepo, escrowRepo, rdb, cfg, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, agentRepo, cfg, log)
	listingHandler := handlers.NewListingHandler(listingService, log)
	agentHandler := handlers.NewAgentHandler(agentService, log)
	escrowHandler := handlers.NewEscrowHandler(escrowService, log)
	statsHandler := handlers.NewStatsHandler(statsService, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "message": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, listingHandler, agentHandler, escrowHandler, statsHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
