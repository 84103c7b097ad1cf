package recommend

import "github.com/gofiber/fiber/v2"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/budget-tiers", h.getBudgetTiers)
}

func (h *Handler) getBudgetTiers(c *fiber.Ctx) error {
	return c.JSON(Tiers())
}
