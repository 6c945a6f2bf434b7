package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/domain"
	"github.com/seu-repo/condomino/internal/ports"
)

// Claims represents the custom JWT claims used by the application.
// Subject is the login identifier (email, or CPF when the account has
// no email), so one token can map onto several tenant-scoped accounts;
// TenantID pins which one was selected at login.
type Claims struct {
	jwt.RegisteredClaims
	Role     string `json:"role,omitempty"`
	TenantID string `json:"tenant_id,omitempty"`
}

// TokenIssuer signs and verifies session tokens. Expiry checks run
// against the injected clock, not the wall clock.
type TokenIssuer struct {
	secret []byte
	clock  ports.Clock
	log    *zap.Logger
}

func NewTokenIssuer(secret string, clock ports.Clock, log *zap.Logger) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		clock:  clock,
		log:    log,
	}
}

// Sign creates a signed session token for the given user.
func (i *TokenIssuer) Sign(user *domain.User, ttl time.Duration, now time.Time) (string, error) {
	subject := user.Email
	if subject == "" {
		subject = user.Document
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		Role: string(user.Role),
	}
	if user.TenantID != nil {
		claims.TenantID = *user.TenantID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		i.log.Error("failed to sign token",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token string, returning its claims.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.clock.Now))
	if err != nil {
		i.log.Debug("token validation failed", zap.Error(err))
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
