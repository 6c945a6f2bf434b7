package auth

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-repo/condomino/internal/domain"
	"github.com/seu-repo/condomino/internal/ports"
)

// Config holds authentication durations.
type Config struct {
	// StandardTTL is the session length of a regular login
	StandardTTL time.Duration

	// ExtendedTTL is the session length when the client asks to stay logged in
	ExtendedTTL time.Duration

	// DeviceTrustTTL is how long a trusted device skips the 2FA challenge
	DeviceTrustTTL time.Duration
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		StandardTTL:    12 * time.Hour,
		ExtendedTTL:    30 * 24 * time.Hour,
		DeviceTrustTTL: 30 * 24 * time.Hour,
	}
}

// Service resolves credentials to one tenant-scoped account among the
// candidates sharing a login identifier, runs the 2FA challenge, and
// issues session tokens.
type Service struct {
	users   ports.UserRepository
	tenants ports.TenantRepository
	devices ports.TrustedDeviceRepository
	totp    ports.TOTPVerifier
	issuer  *TokenIssuer
	clock   ports.Clock
	config  *Config
	log     *zap.Logger
}

func NewService(
	users ports.UserRepository,
	tenants ports.TenantRepository,
	devices ports.TrustedDeviceRepository,
	totp ports.TOTPVerifier,
	issuer *TokenIssuer,
	clock ports.Clock,
	config *Config,
	log *zap.Logger,
) ports.AuthService {
	if config == nil {
		config = DefaultConfig()
	}
	return &Service{
		users:   users,
		tenants: tenants,
		devices: devices,
		totp:    totp,
		issuer:  issuer,
		clock:   clock,
		config:  config,
		log:     log,
	}
}

func (s *Service) Authenticate(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	candidates, err := s.matchCandidates(ctx, in.Identifier, in.Password)
	if err != nil {
		return nil, err
	}

	if len(candidates) > 1 && in.SelectedProfileID == "" {
		summaries := make([]domain.ProfileSummary, 0, len(candidates))
		for i := range candidates {
			summaries = append(summaries, s.summarize(ctx, &candidates[i]))
		}
		return &ports.AuthResult{
			Status:     ports.AuthStatusMultipleProfiles,
			Candidates: summaries,
		}, nil
	}

	account, err := s.selectAccount(candidates, in.SelectedProfileID)
	if err != nil {
		return nil, err
	}

	if account.HasTwoFactor() {
		trusted := s.deviceTrusted(ctx, account.ID, in.DeviceID)
		if !trusted {
			if in.TwoFactorCode == "" {
				return &ports.AuthResult{Status: ports.AuthStatusTwoFactorRequired}, nil
			}
			if !s.totp.Verify(account.TwoFactorSecret, in.TwoFactorCode) {
				return nil, domain.ErrInvalidTwoFactorCode
			}
			if in.TrustDevice && in.DeviceID != "" {
				s.trustDevice(ctx, account.ID, in.DeviceID)
			}
		}
	}

	now := s.clock.Now()
	account.LastSeenAt = &now
	if err := s.users.Save(ctx, account); err != nil {
		s.log.Warn("failed to update last seen",
			zap.String("user_id", account.ID),
			zap.Error(err),
		)
	}

	ttl := s.config.StandardTTL
	if in.KeepLogged {
		ttl = s.config.ExtendedTTL
	}
	token, err := s.issuer.Sign(account, ttl, now)
	if err != nil {
		return nil, err
	}

	profile := s.summarize(ctx, account)
	s.log.Info("login succeeded",
		zap.String("user_id", account.ID),
		zap.String("role", string(account.Role)),
		zap.Bool("keep_logged", in.KeepLogged),
	)

	return &ports.AuthResult{
		Status:  ports.AuthStatusAuthenticated,
		Token:   token,
		Profile: &profile,
	}, nil
}

// matchCandidates returns every account whose password matches. Lookup
// failures and empty matches collapse to the same generic error so the
// response never reveals whether the identifier exists.
func (s *Service) matchCandidates(ctx context.Context, identifier, password string) ([]domain.User, error) {
	accounts, err := s.users.FindByLogin(ctx, identifier)
	if err != nil {
		s.log.Warn("candidate lookup failed", zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}

	matched := make([]domain.User, 0, len(accounts))
	for _, a := range accounts {
		if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) == nil {
			matched = append(matched, a)
		}
	}
	if len(matched) == 0 {
		return nil, domain.ErrInvalidCredentials
	}
	return matched, nil
}

func (s *Service) selectAccount(candidates []domain.User, selectedID string) (*domain.User, error) {
	if selectedID == "" {
		return &candidates[0], nil
	}
	for i := range candidates {
		if candidates[i].ID == selectedID {
			return &candidates[i], nil
		}
	}
	return nil, domain.ErrInvalidProfileSelection
}

func (s *Service) deviceTrusted(ctx context.Context, userID, deviceID string) bool {
	if deviceID == "" {
		return false
	}
	device, err := s.devices.Find(ctx, userID, deviceID)
	if err != nil || device == nil {
		return false
	}
	return device.IsValid(s.clock.Now())
}

func (s *Service) trustDevice(ctx context.Context, userID, deviceID string) {
	device := &domain.TrustedDevice{
		ID:        uuid.New().String(),
		UserID:    userID,
		DeviceID:  deviceID,
		ExpiresAt: s.clock.Now().Add(s.config.DeviceTrustTTL),
		CreatedAt: s.clock.Now(),
	}
	if err := s.devices.Upsert(ctx, device); err != nil {
		s.log.Warn("failed to persist trusted device",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

func (s *Service) summarize(ctx context.Context, account *domain.User) domain.ProfileSummary {
	summary := domain.ProfileSummary{
		UserID: account.ID,
		Label:  account.Name,
		Role:   account.Role,
	}
	if account.TenantID != nil {
		summary.TenantID = *account.TenantID
		if tenant, err := s.tenants.FindByID(ctx, *account.TenantID); err == nil && tenant != nil {
			summary.TenantName = tenant.Name
		}
	}
	return summary
}

// ResolveToken binds a verified token to one account. Among the
// accounts sharing the token's subject identity, the one whose tenant
// matches the tenant claim wins; when none matches, the lowest user id
// is the stable fallback.
func (s *Service) ResolveToken(ctx context.Context, token string) (*ports.Identity, error) {
	claims, err := s.issuer.Verify(token)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	accounts, err := s.users.FindByLogin(ctx, claims.Subject)
	if err != nil || len(accounts) == 0 {
		return nil, domain.ErrInvalidCredentials
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })

	account := &accounts[0]
	if claims.TenantID != "" {
		for i := range accounts {
			if accounts[i].TenantID != nil && *accounts[i].TenantID == claims.TenantID {
				account = &accounts[i]
				break
			}
		}
	}

	identity := &ports.Identity{
		UserID: account.ID,
		Role:   account.Role,
	}
	if account.TenantID != nil {
		identity.TenantID = *account.TenantID
	}
	return identity, nil
}

func (s *Service) Enroll2FA(ctx context.Context, userID string) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrNotFound
	}

	account := user.Email
	if account == "" {
		account = user.Document
	}
	secret, err := s.totp.GenerateSecret(account)
	if err != nil {
		return "", err
	}

	user.TwoFactorSecret = secret
	if err := s.users.Save(ctx, user); err != nil {
		return "", err
	}

	s.log.Info("two-factor enrolled", zap.String("user_id", userID))
	return secret, nil
}
