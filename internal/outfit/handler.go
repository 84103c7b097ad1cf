package outfit

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/outfit-backend/internal/catalog"
	"github.com/wichananm65/outfit-backend/internal/recommend"
)

// Generator is the slice of the recommendation client the handler needs;
// tests substitute a stub.
type Generator interface {
	GetOutfits(ctx context.Context, r recommend.Request) (*recommend.Response, error)
}

type Handler struct {
	catalog   *catalog.Service
	generator Generator
}

type generateRequest struct {
	BaseProductID string `json:"baseProductId"`
	BudgetTier    string `json:"budgetTier"`
	Occasion      string `json:"occasion"`
}

func NewHandler(catalogService *catalog.Service, generator Generator) *Handler {
	return &Handler{catalog: catalogService, generator: generator}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/outfits", h.generateOutfits)
}

// generateOutfits validates the selection, calls the engine and returns
// display-ready view models. A response with zero outfits is a normal 200 —
// the client renders its own empty state; only transport failures are
// errors.
func (h *Handler) generateOutfits(c *fiber.Ctx) error {
	payload := new(generateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if payload.BaseProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please select a product."})
	}

	tier, ok := recommend.ParseTier(payload.BudgetTier)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "budgetTier must be one of low, mid, high"})
	}

	res, err := h.generator.GetOutfits(c.Context(), recommend.Request{
		BaseProductID: payload.BaseProductID,
		BudgetTier:    tier,
		Occasion:      payload.Occasion,
	})
	if err != nil {
		log.Printf("outfit generation failed for base=%s: %v", payload.BaseProductID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Failed to generate outfit. Please try again."})
	}

	store := h.catalog.Store()
	return c.JSON(fiber.Map{
		"budgetTier": tier,
		"outfits":    AssembleAll(res.Outfits, store),
	})
}
