package domain

import (
	"time"
)

type UserRole string

const (
	UserRolePlatformAdmin UserRole = "platform_admin"
	UserRoleSyndic        UserRole = "syndic"
	UserRoleCondoManager  UserRole = "condo_manager"
	UserRoleResident      UserRole = "resident"
	UserRoleAffiliate     UserRole = "affiliate"
	UserRoleStaff         UserRole = "staff"
)

// User is one profile of a physical person. The same email/CPF pair may
// appear once per tenant, so a login identifier can resolve to several
// users; (email-or-CPF, tenant) resolves to at most one.
type User struct {
	ID              string     `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name"`
	Email           string     `json:"email" gorm:"index:idx_users_email_tenant,unique"`
	Document        string     `json:"document" gorm:"index"` // CPF
	Password        string     `json:"-"`                     // Hashed password
	Role            UserRole   `json:"role"`
	TenantID        *string    `json:"tenant_id,omitempty" gorm:"index:idx_users_email_tenant,unique"`
	TwoFactorSecret string     `json:"-"`
	LastSeenAt      *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// HasTwoFactor reports whether the user enrolled a TOTP secret.
func (u *User) HasTwoFactor() bool {
	return u.TwoFactorSecret != ""
}

// ProfileSummary is what login returns when several accounts share the
// same credentials and the client has to pick one.
type ProfileSummary struct {
	UserID     string   `json:"user_id"`
	Label      string   `json:"label"`
	Role       UserRole `json:"role"`
	TenantID   string   `json:"tenant_id,omitempty"`
	TenantName string   `json:"tenant_name,omitempty"`
}

// TrustedDevice exempts a device from the 2FA challenge until it expires.
// Expired rows are ignored, not purged.
type TrustedDevice struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index:idx_trusted_user_device,unique"`
	DeviceID  string    `json:"device_id" gorm:"index:idx_trusted_user_device,unique"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValid reports whether the trust window is still open at the given instant.
func (d *TrustedDevice) IsValid(now time.Time) bool {
	return d.ExpiresAt.After(now)
}
