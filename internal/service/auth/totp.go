package auth

import (
	"github.com/pquerna/otp/totp"

	"github.com/seu-repo/condomino/internal/ports"
)

// totpVerifier implements ports.TOTPVerifier on top of RFC 6238 TOTP.
type totpVerifier struct {
	issuer string
}

func NewTOTPVerifier(issuer string) ports.TOTPVerifier {
	return &totpVerifier{issuer: issuer}
}

func (v *totpVerifier) GenerateSecret(account string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      v.issuer,
		AccountName: account,
	})
	if err != nil {
		return "", err
	}
	return key.Secret(), nil
}

func (v *totpVerifier) Verify(secret, code string) bool {
	return totp.Validate(code, secret)
}
