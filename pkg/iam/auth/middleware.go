package auth

import (
	"context"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/openhire/jobportal/pkg/logx"
)

const localsClaimsKey = "auth_claims"

// TokenStore checks whether an issued token has been revoked
type TokenStore interface {
	// IsRevoked reports whether the token id was revoked
	IsRevoked(ctx context.Context, tokenID string) (bool, error)

	// Revoke marks a token id as revoked until its expiry
	Revoke(ctx context.Context, tokenID string, claims *Claims) error
}

// TokenMiddleware authenticates requests with bearer tokens
type TokenMiddleware struct {
	tokens TokenService
	store  TokenStore
}

// NewTokenMiddleware creates the authentication middleware
func NewTokenMiddleware(tokens TokenService, store TokenStore) *TokenMiddleware {
	return &TokenMiddleware{
		tokens: tokens,
		store:  store,
	}
}

// Authenticate validates the Authorization header and stores claims in the context
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrMissingToken()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrInvalidToken().WithDetail("header", "expected Bearer token")
		}

		claims, err := m.tokens.ValidateAccessToken(parts[1])
		if err != nil {
			return err
		}

		if err := m.checkRevocation(c, claims); err != nil {
			return err
		}

		c.Locals(localsClaimsKey, claims)
		return c.Next()
	}
}

// AuthenticateOptional stores claims when a valid bearer token is present and
// lets anonymous requests through. Invalid or revoked tokens are still rejected.
func (m *TokenMiddleware) AuthenticateOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrInvalidToken().WithDetail("header", "expected Bearer token")
		}

		claims, err := m.tokens.ValidateAccessToken(parts[1])
		if err != nil {
			return err
		}

		if err := m.checkRevocation(c, claims); err != nil {
			return err
		}

		c.Locals(localsClaimsKey, claims)
		return c.Next()
	}
}

// checkRevocation rejects tokens the store has revoked. A store outage fails
// open and is logged; the token keeps its issued expiry either way.
func (m *TokenMiddleware) checkRevocation(c *fiber.Ctx, claims *Claims) error {
	if m.store == nil {
		return nil
	}

	revoked, err := m.store.IsRevoked(c.Context(), claims.TokenID)
	if err != nil {
		logx.Errorf("token revocation check failed for %s: %v", claims.TokenID, err)
		return nil
	}
	if revoked {
		return ErrTokenRevoked()
	}
	return nil
}

// RequireRoles rejects authenticated callers whose role is not in the allowed set
func (m *TokenMiddleware) RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := GetClaims(c)
		if !ok {
			return ErrMissingToken()
		}
		if !slices.Contains(roles, claims.Role) {
			return ErrForbiddenRole().WithDetail("role", claims.Role)
		}
		return c.Next()
	}
}

// GetClaims extracts the authenticated claims from the request context
func GetClaims(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(localsClaimsKey).(*Claims)
	return claims, ok
}
