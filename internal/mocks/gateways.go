package mocks

import (
	"context"
	"time"
)

// MockPayoutGateway is a mock implementation of PayoutGateway
type MockPayoutGateway struct {
	CreateChargeFunc func(ctx context.Context, customerRef string, amount float64) (string, error)
	TransferFunc     func(ctx context.Context, paymentKey string, amount float64) (string, error)
}

func (m *MockPayoutGateway) CreateCharge(ctx context.Context, customerRef string, amount float64) (string, error) {
	if m.CreateChargeFunc != nil {
		return m.CreateChargeFunc(ctx, customerRef, amount)
	}
	return "charge-1", nil
}

func (m *MockPayoutGateway) Transfer(ctx context.Context, paymentKey string, amount float64) (string, error) {
	if m.TransferFunc != nil {
		return m.TransferFunc(ctx, paymentKey, amount)
	}
	return "transfer-1", nil
}

// MockEmailService is a mock implementation of EmailService
type MockEmailService struct {
	SendFunc         func(ctx context.Context, to, subject, body string) error
	SendHTMLFunc     func(ctx context.Context, to, subject, htmlBody string) error
	SendTemplateFunc func(ctx context.Context, to, templateName string, data map[string]interface{}) error
}

func (m *MockEmailService) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body)
	}
	return nil
}

func (m *MockEmailService) SendHTML(ctx context.Context, to, subject, htmlBody string) error {
	if m.SendHTMLFunc != nil {
		return m.SendHTMLFunc(ctx, to, subject, htmlBody)
	}
	return nil
}

func (m *MockEmailService) SendTemplate(ctx context.Context, to, templateName string, data map[string]interface{}) error {
	if m.SendTemplateFunc != nil {
		return m.SendTemplateFunc(ctx, to, templateName, data)
	}
	return nil
}

// MockTOTPVerifier is a mock implementation of TOTPVerifier
type MockTOTPVerifier struct {
	GenerateSecretFunc func(account string) (string, error)
	VerifyFunc         func(secret, code string) bool
}

func (m *MockTOTPVerifier) GenerateSecret(account string) (string, error) {
	if m.GenerateSecretFunc != nil {
		return m.GenerateSecretFunc(account)
	}
	return "mock-secret", nil
}

func (m *MockTOTPVerifier) Verify(secret, code string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(secret, code)
	}
	return false
}

// MockClock is a settable clock for tests
type MockClock struct {
	Current time.Time
}

func NewMockClock(start time.Time) *MockClock {
	return &MockClock{Current: start}
}

func (c *MockClock) Now() time.Time {
	return c.Current
}

// Advance moves the clock forward
func (c *MockClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}
