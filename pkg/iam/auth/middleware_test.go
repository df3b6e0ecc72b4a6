package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
)

type staticTokenService struct {
	claims *Claims
}

func (s staticTokenService) GenerateAccessToken(kernel.UserID, kernel.Email, string) (string, error) {
	return "token", nil
}

func (s staticTokenService) ValidateAccessToken(string) (*Claims, error) {
	return s.claims, nil
}

type stubTokenStore struct {
	revoked bool
	err     error
}

func (s stubTokenStore) IsRevoked(context.Context, string) (bool, error) {
	return s.revoked, s.err
}

func (s stubTokenStore) Revoke(context.Context, string, *Claims) error { return nil }

func newTestApp(store TokenStore) *fiber.App {
	tokens := staticTokenService{claims: &Claims{TokenID: "jti-1", UserID: kernel.NewUserID(1), Role: "JobSeeker"}}
	middleware := NewTokenMiddleware(tokens, store)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *errx.Error
			if errors.As(err, &e) {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Get("/protected", middleware.Authenticate(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func protectedRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	return req
}

func TestAuthenticateRejectsRevokedToken(t *testing.T) {
	app := newTestApp(stubTokenStore{revoked: true})

	resp, err := app.Test(protectedRequest())
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthenticateSurvivesStoreOutage(t *testing.T) {
	app := newTestApp(stubTokenStore{err: errors.New("connection refused")})

	resp, err := app.Test(protectedRequest())
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200; a store outage must not reject valid tokens", resp.StatusCode)
	}
}

func TestAuthenticateAcceptsUnrevokedToken(t *testing.T) {
	app := newTestApp(stubTokenStore{})

	resp, err := app.Test(protectedRequest())
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
