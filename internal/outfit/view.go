package outfit

import (
	"strconv"

	"github.com/wichananm65/outfit-backend/internal/catalog"
	"github.com/wichananm65/outfit-backend/internal/recommend"
)

// FallbackImage is served for any slot whose product has no image or does
// not resolve in the catalog.
const FallbackImage = "/no-image.png"

// PriceUnavailable is the display string for a missing price. A zero price
// is the dataset's "unknown" sentinel and must never render as ₹0.
const PriceUnavailable = "Price unavailable"

// SlotView is one fully resolved outfit slot. When the referenced product is
// unknown, Resolved is false and only the fallback image and the unavailable
// price marker are populated.
type SlotView struct {
	Resolved     bool    `json:"resolved"`
	Image        string  `json:"image"`
	Title        *string `json:"title,omitempty"`
	Brand        *string `json:"brand,omitempty"`
	Price        *int    `json:"price,omitempty"`
	PriceDisplay string  `json:"priceDisplay"`
}

// View is a display-ready outfit: every slot resolved against the catalog,
// prices formatted, the engine's total carried through verbatim. The
// presentation layer needs no further catalog lookups.
type View struct {
	MatchScore   float64  `json:"matchScore"`
	Top          SlotView `json:"top"`
	Bottom       SlotView `json:"bottom"`
	Footwear     SlotView `json:"footwear"`
	Accessory    SlotView `json:"accessory"`
	TotalPrice   float64  `json:"totalPrice"`
	TotalDisplay string   `json:"totalDisplay"`
	Summary      string   `json:"summary"`
}

// FormatPrice renders a known price with the currency prefix; zero or
// negative means unknown and renders as the unavailable marker.
func FormatPrice(price int) string {
	if price > 0 {
		return "₹" + strconv.Itoa(price)
	}
	return PriceUnavailable
}

func formatTotal(total float64) string {
	return "₹" + strconv.FormatFloat(total, 'f', -1, 64)
}

func resolveSlot(id *string, store *catalog.Store) SlotView {
	placeholder := SlotView{
		Resolved:     false,
		Image:        FallbackImage,
		PriceDisplay: PriceUnavailable,
	}
	if id == nil || *id == "" {
		return placeholder
	}

	p, ok := store.Get(*id)
	if !ok {
		return placeholder
	}

	view := SlotView{
		Resolved:     true,
		Image:        FallbackImage,
		Title:        &p.Title,
		Brand:        &p.Brand,
		PriceDisplay: FormatPrice(p.Price),
	}
	if p.ImageURL != nil && *p.ImageURL != "" {
		view.Image = *p.ImageURL
	}
	if p.Price > 0 {
		price := p.Price
		view.Price = &price
	}
	return view
}

// Assemble joins one engine outfit against the catalog. It is total: any
// slot that does not resolve degrades to a placeholder, and the remaining
// slots are still assembled.
func Assemble(o recommend.Outfit, store *catalog.Store) View {
	return View{
		MatchScore:   o.MatchScore,
		Top:          resolveSlot(o.Items.Top, store),
		Bottom:       resolveSlot(o.Items.Bottom, store),
		Footwear:     resolveSlot(o.Items.Footwear, store),
		Accessory:    resolveSlot(o.Items.Accessory, store),
		TotalPrice:   o.Reasoning.Budget.TotalPrice,
		TotalDisplay: formatTotal(o.Reasoning.Budget.TotalPrice),
		Summary:      o.Reasoning.Summary,
	}
}

// AssembleAll maps every outfit in the engine response, preserving the
// engine's ranking order.
func AssembleAll(outfits []recommend.Outfit, store *catalog.Store) []View {
	out := make([]View, 0, len(outfits))
	for _, o := range outfits {
		out = append(out, Assemble(o, store))
	}
	return out
}
