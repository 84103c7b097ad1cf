package anchor

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/outfit-backend/internal/catalog"
)

type Handler struct {
	catalog *catalog.Service
}

func NewHandler(catalogService *catalog.Service) *Handler {
	return &Handler{catalog: catalogService}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/anchors", h.getAnchors)
}

func (h *Handler) getAnchors(c *fiber.Ctx) error {
	return c.JSON(Candidates(h.catalog.Store()))
}
