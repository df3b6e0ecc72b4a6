package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
)

// Claims carries the authenticated identity of a request
type Claims struct {
	TokenID   string        `json:"jti"`
	UserID    kernel.UserID `json:"user_id"`
	Email     kernel.Email  `json:"email"`
	Role      string        `json:"role"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// TokenService issues and validates access tokens
type TokenService interface {
	// GenerateAccessToken creates a signed token for a user
	GenerateAccessToken(userID kernel.UserID, email kernel.Email, role string) (string, error)

	// ValidateAccessToken parses and verifies a token string
	ValidateAccessToken(token string) (*Claims, error)
}

// JWTService implements TokenService with HMAC-signed JWTs
type JWTService struct {
	secretKey []byte
	tokenTTL  time.Duration
	issuer    string
}

// NewJWTService creates a JWT-backed token service
func NewJWTService(secretKey string, tokenTTL time.Duration, issuer string) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		issuer:    issuer,
	}
}

type jwtClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAccessToken creates a signed token for a user
func (s *JWTService) GenerateAccessToken(userID kernel.UserID, email kernel.Email, role string) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Email: string(email),
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign access token", errx.TypeInternal)
	}

	return signed, nil
}

// ValidateAccessToken parses and verifies a token string
func (s *JWTService) ValidateAccessToken(tokenString string) (*Claims, error) {
	var claims jwtClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken().WithDetail("alg", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken()
	}

	userID := kernel.ParseID(claims.Subject)
	if userID == 0 {
		return nil, ErrInvalidToken().WithDetail("subject", claims.Subject)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &Claims{
		TokenID:   claims.ID,
		UserID:    kernel.NewUserID(userID),
		Email:     kernel.Email(claims.Email),
		Role:      claims.Role,
		ExpiresAt: expiresAt,
	}, nil
}
