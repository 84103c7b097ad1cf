package auth

import (
	"crypto/subtle"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Handler issues the admin token that guards mutating routes (catalog
// reload). There are no user accounts; the caller proves possession of the
// shared admin key and gets a short-lived JWT back.
type Handler struct{}

type signInRequest struct {
	AdminKey string `json:"adminKey"`
}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.signIn)
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(signInRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	adminKey := os.Getenv("ADMIN_API_KEY")
	if adminKey == "" || subtle.ConstantTimeCompare([]byte(payload.AdminKey), []byte(adminKey)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid admin key"})
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{"token": signed})
}
