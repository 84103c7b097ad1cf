package catalog

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/product/:id", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/catalog/reload", h.reloadCatalog)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.Store().List())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	p, ok := h.service.Store().Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	return c.JSON(p)
}

// reloadCatalog re-reads the configured catalog source and swaps the
// snapshot. Protected by the JWT middleware registered in main.
func (h *Handler) reloadCatalog(c *fiber.Ctx) error {
	store, err := h.service.Reload()
	if err != nil {
		log.Printf("catalog reload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "catalog reload failed"})
	}
	return c.JSON(fiber.Map{"products": store.Len()})
}
