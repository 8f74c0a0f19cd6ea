package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/nyumbasure/backend/internal/config"
	"github.com/nyumbasure/backend/internal/http/handlers"
	"github.com/nyumbasure/backend/internal/middleware"
	"github.com/nyumbasure/backend/internal/rbac"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	listingHandler *handlers.ListingHandler,
	agentHandler *handlers.AgentHandler,
	escrowHandler *handlers.EscrowHandler,
	statsHandler *handlers.StatsHandler,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/nyumba")
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimit, cfg.RateLimitWindow))

	// Auth (public)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/admin/setup", authHandler.AdminSetup)

	// Listings (public reads + anonymous reports)
	api.Get("/listings", listingHandler.List)
	api.Get("/listings/:id", listingHandler.Get)
	api.Post("/listings/:id/report", listingHandler.Report)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret, log))

	// Listings (agent-owned writes)
	protected.Post("/listings", middleware.RequirePermission(rbac.PermCreateListing), listingHandler.Create)
	protected.Put("/listings/:id", middleware.RequirePermission(rbac.PermManageOwnListing), listingHandler.Update)
	protected.Delete("/listings/:id", middleware.RequirePermission(rbac.PermManageOwnListing), listingHandler.Delete)

	// Agent approval workflow (admin)
	protected.Get("/agents/pending", middleware.RequirePermission(rbac.PermModerateAgents), agentHandler.Pending)
	protected.Post("/agents/:id/approve", middleware.RequirePermission(rbac.PermModerateAgents), agentHandler.Approve)
	protected.Post("/agents/:id/reject", middleware.RequirePermission(rbac.PermModerateAgents), agentHandler.Reject)

	// Listing moderation (admin)
	protected.Get("/admin/listings/pending", middleware.RequirePermission(rbac.PermModerateListings), listingHandler.ListPending)
	protected.Post("/admin/listings/:id/approve", middleware.RequirePermission(rbac.PermModerateListings), listingHandler.Approve)
	protected.Post("/admin/listings/:id/reject", middleware.RequirePermission(rbac.PermModerateListings), listingHandler.Reject)

	// Escrow
	protected.Post("/escrow/initiate", middleware.RequirePermission(rbac.PermInitiateEscrow), escrowHandler.Initiate)

	// Stats
	protected.Get("/stats", middleware.RequirePermission(rbac.PermViewStats), statsHandler.Dashboard)
}
