package auth

import (
	"github.com/openhire/jobportal/pkg/errx"
	"golang.org/x/crypto/bcrypt"
)

// PasswordService hashes and verifies credentials
type PasswordService interface {
	// HashPassword produces a one-way hash of a plaintext password
	HashPassword(plain string) (string, error)

	// VerifyPassword checks a plaintext password against a stored hash
	VerifyPassword(hash, plain string) bool
}

// BcryptPasswordService implements PasswordService with bcrypt
type BcryptPasswordService struct {
	cost int
}

// NewBcryptPasswordService creates a bcrypt password service with default cost
func NewBcryptPasswordService() *BcryptPasswordService {
	return &BcryptPasswordService{cost: bcrypt.DefaultCost}
}

// HashPassword produces a one-way hash of a plaintext password
func (s *BcryptPasswordService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a stored hash
func (s *BcryptPasswordService) VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
