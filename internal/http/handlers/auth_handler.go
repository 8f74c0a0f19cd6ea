package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nyumbasure/backend/internal/auth"
	"github.com/nyumbasure/backend/internal/config"
	"github.com/nyumbasure/backend/internal/http/dto"
	"github.com/nyumbasure/backend/internal/models"
	"github.com/nyumbasure/backend/internal/repositories"
	"go.uber.org/zap"
)

type AuthHandler struct {
	userRepo  *repositories.UserRepo
	agentRepo *repositories.AgentRepo
	cfg       *config.Config
	log       *zap.Logger
}

func NewAuthHandler(userRepo *repositories.UserRepo, agentRepo *repositories.AgentRepo, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, agentRepo: agentRepo, cfg: cfg, log: log}
}

// Register creates a user account. Registering with role "agent" also files
// a pending agent profile for admin review.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Email, password and name are required"})
	}

	role := req.Role
	if role == "" {
		role = models.RoleBuyer
	}
	if role != models.RoleBuyer && role != models.RoleAgent {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Role must be buyer or agent"})
	}

	hash, err := auth.HashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		h.log.Error("password hash failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Registration failed"})
	}

	user := &models.User{Email: req.Email, PasswordHash: hash, Name: req.Name, Role: role}
	if err := h.userRepo.Create(c.Context(), user); err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Email already registered"})
		}
		h.log.Error("user create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Registration failed"})
	}

	if role == models.RoleAgent {
		agent := &models.Agent{
			UserID: user.ID,
			Name:   req.Name,
			Status: models.AgentStatusPending,
		}
		if req.Phone != "" {
			agent.Phone = &req.Phone
		}
		agent.Email = &user.Email
		if err := h.agentRepo.Create(c.Context(), agent); err != nil {
			h.log.Error("agent profile create failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Registration failed"})
		}
	}

	return h.respondWithToken(c, user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Email and password are required"})
	}

	user, err := h.userRepo.GetByEmail(c.Context(), req.Email)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && !auth.CheckPassword(user.PasswordHash, req.Password)) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Success: false, Message: "Invalid email or password"})
	}
	if err != nil {
		h.log.Error("login lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Login failed"})
	}

	return h.respondWithToken(c, user)
}

// AdminSetup bootstraps the first admin account. Once any admin exists it
// always fails; further admins are created out-of-band.
func (h *AuthHandler) AdminSetup(c *fiber.Ctx) error {
	var req dto.AdminSetupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Email, password and name are required"})
	}

	exists, err := h.userRepo.AdminExists(c.Context())
	if err != nil {
		h.log.Error("admin existence check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Setup failed"})
	}
	if exists {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Admin account already exists"})
	}

	hash, err := auth.HashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		h.log.Error("password hash failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Setup failed"})
	}

	user := &models.User{Email: req.Email, PasswordHash: hash, Name: req.Name, Role: models.RoleAdmin}
	if err := h.userRepo.Create(c.Context(), user); err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Email already registered"})
		}
		h.log.Error("admin create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Setup failed"})
	}

	return h.respondWithToken(c, user)
}

func (h *AuthHandler) respondWithToken(c *fiber.Ctx, user *models.User) error {
	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Email, user.Role, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("jwt generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Authentication failed"})
	}
	return c.JSON(dto.AuthResponse{Success: true, Token: token, User: user})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
