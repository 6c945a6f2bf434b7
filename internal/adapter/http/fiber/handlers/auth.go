package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/condomino/internal/observability/telemetry"
	"github.com/seu-repo/condomino/internal/ports"
)

type AuthHandler struct {
	service ports.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service ports.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

type LoginRequest struct {
	Identifier        string `json:"identifier"` // email or CPF
	Password          string `json:"password"`
	SelectedProfileID string `json:"selected_profile_id,omitempty"`
	TwoFactorCode     string `json:"two_factor_code,omitempty"`
	DeviceID          string `json:"device_id,omitempty"`
	TrustDevice       bool   `json:"trust_device,omitempty"`
	KeepLogged        bool   `json:"keep_logged,omitempty"`
}

// Login runs one authentication attempt. The same endpoint serves the
// follow-up calls that carry a selected profile or a 2FA code, so the
// client just re-posts with the extra field filled in.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Identifier == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identifier and password are required"})
	}

	result, err := h.service.Authenticate(c.UserContext(), ports.LoginInput{
		Identifier:        req.Identifier,
		Password:          req.Password,
		SelectedProfileID: req.SelectedProfileID,
		TwoFactorCode:     req.TwoFactorCode,
		DeviceID:          req.DeviceID,
		TrustDevice:       req.TrustDevice,
		KeepLogged:        req.KeepLogged,
	})
	if err != nil {
		telemetry.LoginAttempts.WithLabelValues("failure").Inc()
		h.log.Warn("Login failed", zap.String("identifier", req.Identifier), zap.Error(err))
		return err
	}

	switch result.Status {
	case ports.AuthStatusMultipleProfiles:
		telemetry.LoginAttempts.WithLabelValues("profile_selection").Inc()
		return c.JSON(fiber.Map{
			"status":   result.Status,
			"profiles": result.Candidates,
		})
	case ports.AuthStatusTwoFactorRequired:
		telemetry.LoginAttempts.WithLabelValues("two_factor_challenge").Inc()
		return c.JSON(fiber.Map{
			"status": result.Status,
		})
	default:
		telemetry.LoginAttempts.WithLabelValues("success").Inc()
		return c.JSON(fiber.Map{
			"status":  result.Status,
			"token":   result.Token,
			"profile": result.Profile,
		})
	}
}

// Me returns the identity resolved from the bearer token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity := middleware.Identity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	return c.JSON(fiber.Map{
		"user_id":   identity.UserID,
		"role":      identity.Role,
		"tenant_id": identity.TenantID,
	})
}

// Enroll2FA provisions a TOTP secret for the authenticated user. The
// secret is returned once, for the client to feed an authenticator app.
func (h *AuthHandler) Enroll2FA(c *fiber.Ctx) error {
	identity := middleware.Identity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	secret, err := h.service.Enroll2FA(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}

	h.log.Info("2FA enrolled", zap.String("user_id", identity.UserID))

	return c.JSON(fiber.Map{
		"secret": secret,
	})
}
