package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/condomino/internal/ports"
)

type BookingHandler struct {
	service ports.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service ports.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

type CreateBookingRequest struct {
	FacilityID  string `json:"facility_id"`
	Date        string `json:"date"` // YYYY-MM-DD
	StartMinute int    `json:"start_minute"`
	EndMinute   int    `json:"end_minute"`
}

type AttachReceiptRequest struct {
	ReceiptURL string `json:"receipt_url"`
}

type ReviewBookingRequest struct {
	Approve bool `json:"approve"`
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.FacilityID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Facility is required"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	identity := middleware.Identity(c)

	booking, err := h.service.CreateBooking(c.UserContext(), ports.CreateBookingInput{
		FacilityID:  req.FacilityID,
		RequesterID: identity.UserID,
		Date:        date,
		Start:       req.StartMinute,
		End:         req.EndMinute,
	})
	if err != nil {
		return err
	}

	h.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("facility_id", booking.FacilityID),
		zap.String("status", string(booking.Status)),
	)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *BookingHandler) AttachReceipt(c *fiber.Ctx) error {
	var req AttachReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.ReceiptURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Receipt URL is required"})
	}

	identity := middleware.Identity(c)

	if err := h.service.AttachReceipt(c.UserContext(), c.Params("id"), identity.UserID, req.ReceiptURL); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Receipt attached, booking is under analysis"})
}

// Review approves or rejects a booking awaiting analysis. Routing
// restricts it to management roles.
func (h *BookingHandler) Review(c *fiber.Ctx) error {
	var req ReviewBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.Review(c.UserContext(), c.Params("id"), req.Approve); err != nil {
		return err
	}

	outcome := "rejected"
	if req.Approve {
		outcome = "approved"
	}
	h.log.Info("Booking reviewed", zap.String("booking_id", c.Params("id")), zap.String("outcome", outcome))

	return c.JSON(fiber.Map{"message": "Booking " + outcome})
}

func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	if err := h.service.Cancel(c.UserContext(), c.Params("id"), identity.UserID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Booking cancelled"})
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	status := c.Query("status")

	bookings, err := h.service.ListBookings(c.UserContext(), status, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}
