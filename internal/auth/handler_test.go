package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func signInApp() *fiber.App {
	app := fiber.New()
	NewHandler().RegisterPublicRoutes(app)
	return app
}

func TestSignIn_IssuesAdminToken(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "letmein")
	t.Setenv("JWT_SECRET", "test-secret")
	app := signInApp()

	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"adminKey":"letmein"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	body, _ := io.ReadAll(res.Body)
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Token == "" {
		t.Fatalf("expected token in body: %s", body)
	}

	parsed, err := jwt.Parse(payload.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["role"] != "admin" {
		t.Fatalf("expected admin role claim, got %+v", claims)
	}
}

func TestSignIn_Rejections(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "letmein")
	t.Setenv("JWT_SECRET", "test-secret")
	app := signInApp()

	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"adminKey":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong key, got %d", res.StatusCode)
	}

	// an unset admin key disables sign-in entirely
	t.Setenv("ADMIN_API_KEY", "")
	req2 := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"adminKey":""}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 when admin key unset, got %d", res2.StatusCode)
	}
}
