package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/domain"
)

// Provider defines the interface for email providers
type Provider interface {
	Send(ctx context.Context, to, subject, body string, isHTML bool) error
}

// Config holds email service configuration
type Config struct {
	// Provider type: "sendgrid" or "smtp"
	Provider string

	// From email address
	FromEmail string
	FromName  string

	// SendGrid configuration
	SendGridAPIKey string

	// SMTP configuration (for Mailhog or other SMTP servers)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPUseTLS   bool

	// BaseURL is prepended to links in emails
	BaseURL string
}

// DefaultConfig returns a default configuration for development (Mailhog)
func DefaultConfig() *Config {
	return &Config{
		Provider:   "smtp",
		FromEmail:  "noreply@condomino.app",
		FromName:   "Condomino",
		SMTPHost:   "localhost",
		SMTPPort:   1025, // Mailhog default port
		SMTPUseTLS: false,
		BaseURL:    "http://localhost:3000",
	}
}

// Service implements the EmailService interface
type Service struct {
	config    *Config
	provider  Provider
	templates map[string]*template.Template
	log       *zap.Logger
}

// NewService creates a new email service
func NewService(config *Config, log *zap.Logger) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}

	s := &Service{
		config:    config,
		templates: make(map[string]*template.Template),
		log:       log,
	}

	switch config.Provider {
	case "sendgrid":
		if config.SendGridAPIKey == "" {
			return nil, fmt.Errorf("SendGrid API key is required")
		}
		s.provider = NewSendGridProvider(config.SendGridAPIKey, config.FromEmail, config.FromName)
	case "smtp":
		s.provider = NewSMTPProvider(
			config.SMTPHost,
			config.SMTPPort,
			config.SMTPUsername,
			config.SMTPPassword,
			config.FromEmail,
			config.FromName,
			config.SMTPUseTLS,
		)
	default:
		return nil, fmt.Errorf("unknown email provider: %s", config.Provider)
	}

	s.loadTemplates()

	return s, nil
}

// loadTemplates loads all email templates
func (s *Service) loadTemplates() {
	s.templates["welcome"] = template.Must(template.New("welcome").Parse(welcomeTemplate))
	s.templates["booking_created"] = template.Must(template.New("booking_created").Parse(bookingCreatedTemplate))
	s.templates["booking_reviewed"] = template.Must(template.New("booking_reviewed").Parse(bookingReviewedTemplate))
	s.templates["commission_paid"] = template.Must(template.New("commission_paid").Parse(commissionPaidTemplate))
	s.templates["password_reset"] = template.Must(template.New("password_reset").Parse(passwordResetTemplate))
}

// Send sends a generic email
func (s *Service) Send(ctx context.Context, to, subject, body string) error {
	s.log.Info("Sending email",
		zap.String("to", to),
		zap.String("subject", subject),
	)

	if err := s.provider.Send(ctx, to, subject, body, false); err != nil {
		s.log.Error("Failed to send email",
			zap.String("to", to),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendHTML sends an HTML email
func (s *Service) SendHTML(ctx context.Context, to, subject, htmlBody string) error {
	s.log.Info("Sending HTML email",
		zap.String("to", to),
		zap.String("subject", subject),
	)

	if err := s.provider.Send(ctx, to, subject, htmlBody, true); err != nil {
		s.log.Error("Failed to send HTML email",
			zap.String("to", to),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send HTML email: %w", err)
	}

	return nil
}

// SendTemplate sends an email using a template
func (s *Service) SendTemplate(ctx context.Context, to, templateName string, data map[string]interface{}) error {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return fmt.Errorf("template not found: %s", templateName)
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	data["BaseURL"] = s.config.BaseURL

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject, ok := data["Subject"].(string)
	if !ok {
		subject = "Notification from Condomino"
	}

	return s.SendHTML(ctx, to, subject, buf.String())
}

// SendWelcome sends a welcome email to a new user
func (s *Service) SendWelcome(ctx context.Context, user *domain.User, tenantName string) error {
	data := map[string]interface{}{
		"Subject":    "Welcome to Condomino!",
		"UserName":   user.Name,
		"TenantName": tenantName,
	}

	return s.SendTemplate(ctx, user.Email, "welcome", data)
}

// SendBookingReviewed notifies the requester of the review outcome
func (s *Service) SendBookingReviewed(ctx context.Context, user *domain.User, booking *domain.Booking, facilityName string) error {
	outcome := "approved"
	if booking.Status == domain.BookingStatusRejected {
		outcome = "rejected"
	}

	data := map[string]interface{}{
		"Subject":      fmt.Sprintf("Your booking was %s", outcome),
		"UserName":     user.Name,
		"FacilityName": facilityName,
		"Date":         booking.Date.Format("2006-01-02"),
		"Outcome":      outcome,
	}

	return s.SendTemplate(ctx, user.Email, "booking_reviewed", data)
}

// SendCommissionPaid notifies an affiliate that a payout went through
func (s *Service) SendCommissionPaid(ctx context.Context, user *domain.User, amount float64, transferID string) error {
	data := map[string]interface{}{
		"Subject":    "Your commissions were paid out",
		"UserName":   user.Name,
		"Amount":     fmt.Sprintf("%.2f", amount),
		"Currency":   "BRL",
		"TransferID": transferID,
	}

	return s.SendTemplate(ctx, user.Email, "commission_paid", data)
}

// SendPasswordReset sends a password reset email
func (s *Service) SendPasswordReset(ctx context.Context, user *domain.User, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.config.BaseURL, resetToken)

	data := map[string]interface{}{
		"Subject":  "Reset Your Password",
		"UserName": user.Name,
		"ResetURL": resetURL,
	}

	return s.SendTemplate(ctx, user.Email, "password_reset", data)
}
