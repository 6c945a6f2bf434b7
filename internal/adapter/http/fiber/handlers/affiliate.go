package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/condomino/internal/ports"
)

type AffiliateHandler struct {
	service ports.AffiliateService
	log     *zap.Logger
}

func NewAffiliateHandler(service ports.AffiliateService, log *zap.Logger) *AffiliateHandler {
	return &AffiliateHandler{
		service: service,
		log:     log,
	}
}

// ListCommissions returns the authenticated affiliate's commission
// statement, newest sales first.
func (h *AffiliateHandler) ListCommissions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	identity := middleware.Identity(c)

	commissions, err := h.service.ListCommissions(c.UserContext(), identity.UserID, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"commissions": commissions,
		"count":       len(commissions),
	})
}

// Balance returns the sum the affiliate could be paid today. Blocked
// commissions are excluded until they mature.
func (h *AffiliateHandler) Balance(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	balance, err := h.service.AvailableBalance(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"available_balance": balance,
	})
}
