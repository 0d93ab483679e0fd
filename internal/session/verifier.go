package session

import (
	"errors"

	"github.com/roshni-energy/crm-service/internal/auth"
	"github.com/roshni-energy/crm-service/internal/domain"
)

// Verifier checks a supplied password against a user record.
type Verifier interface {
	Verify(user *domain.User, password string) error
}

// SharedSecretVerifier accepts one shared password for every account. This is
// the demo/seed mode; it is not a security boundary.
type SharedSecretVerifier struct {
	Secret string
}

func (v SharedSecretVerifier) Verify(_ *domain.User, password string) error {
	if password != v.Secret {
		return errors.New("password mismatch")
	}
	return nil
}

// BcryptVerifier checks the password against the user's stored bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(user *domain.User, password string) error {
	if user.PasswordHash == nil {
		return errors.New("no credentials on record")
	}
	return auth.ComparePassword(*user.PasswordHash, password)
}
