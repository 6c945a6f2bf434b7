package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/ports"
)

// WebhookHandler receives billing events from the payment provider.
// The endpoint is unauthenticated, so a shared secret header gates it.
type WebhookHandler struct {
	affiliates ports.AffiliateService
	secret     string
	log        *zap.Logger
}

func NewWebhookHandler(affiliates ports.AffiliateService, secret string, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		affiliates: affiliates,
		secret:     secret,
		log:        log,
	}
}

type BillingEventRequest struct {
	Type     string  `json:"type"`
	TenantID string  `json:"tenant_id"`
	Amount   float64 `json:"amount"`
}

// HandleBillingEvent records affiliate commissions when a tenant's
// subscription payment is confirmed. Unknown event types are
// acknowledged and dropped so the provider stops retrying them.
func (h *WebhookHandler) HandleBillingEvent(c *fiber.Ctx) error {
	if h.secret != "" {
		provided := c.Get("X-Webhook-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(h.secret)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid webhook secret"})
		}
	}

	var event BillingEventRequest
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if event.Type != "payment.confirmed" {
		h.log.Debug("Ignoring billing event", zap.String("type", event.Type))
		return c.JSON(fiber.Map{"message": "Event ignored"})
	}

	if event.TenantID == "" || event.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tenant and a positive amount are required"})
	}

	if err := h.affiliates.RecordCommission(c.UserContext(), event.TenantID, event.Amount); err != nil {
		h.log.Error("Failed to record commission",
			zap.String("tenant_id", event.TenantID),
			zap.Error(err),
		)
		return err
	}

	return c.JSON(fiber.Map{"message": "Event processed"})
}
