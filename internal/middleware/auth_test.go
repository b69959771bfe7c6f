package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"luxrealty_backend/pkg/utils/jwt"
)

func guardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/crm/dashboard", AuthMiddleware(), func(c *fiber.Ctx) error {
		claims := c.Locals("user").(*jwt.Claims)
		return c.JSON(fiber.Map{"email": claims.Email})
	})
	return app
}

func TestAuthMiddleware_NoSession(t *testing.T) {
	app := guardedApp()

	req := httptest.NewRequest(http.MethodGet, "/crm/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	app := guardedApp()

	token, err := jwt.GenerateToken(1, "admin@luxrealty.co.il", "Agency Admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/crm/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_SessionCookie(t *testing.T) {
	app := guardedApp()

	token, err := jwt.GenerateToken(1, "admin@luxrealty.co.il", "Agency Admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/crm/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	app := guardedApp()

	req := httptest.NewRequest(http.MethodGet, "/crm/dashboard", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireAdmin(t *testing.T) {
	app := fiber.New()
	app.Post("/crm/projects", AuthMiddleware(), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusCreated)
	})

	adminToken, _ := jwt.GenerateToken(1, "admin@luxrealty.co.il", "Agency Admin", "admin")
	collabToken, _ := jwt.GenerateToken(2, "collab@luxrealty.co.il", "Agent", "collaborator")

	req := httptest.NewRequest(http.MethodPost, "/crm/projects", nil)
	req.Header.Set("Authorization", "Bearer "+collabToken)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("collaborator: expected 403, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodPost, "/crm/projects", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("admin: expected 201, got %d", resp.StatusCode)
	}
}
