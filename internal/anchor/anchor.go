package anchor

import (
	"strings"

	"github.com/wichananm65/outfit-backend/internal/catalog"
)

// Candidate is the public DTO for a product that may seed an outfit request.
// Only the fields the selection control needs are exposed.
type Candidate struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Brand string  `json:"brand"`
	Image *string `json:"image,omitempty"`
}

// invalidKeywords disqualify maintenance and micro-items (laces, socks, shoe
// care) from anchoring an outfit. Matching is substring-based on purpose:
// "Shoelaces Premium" contains "lace" and is excluded.
var invalidKeywords = []string{
	"lace",
	"laces",
	"sock",
	"socks",
	"insole",
	"cleaner",
	"spray",
	"protector",
	"cream",
}

// Eligible reports whether the product may anchor an outfit: only tops and
// footwear qualify, minus anything whose title carries a disallowed keyword.
func Eligible(p catalog.Product) bool {
	if p.Category != "top" && p.Category != "footwear" {
		return false
	}

	title := strings.ToLower(p.Title)
	for _, keyword := range invalidKeywords {
		if strings.Contains(title, keyword) {
			return false
		}
	}
	return true
}

// Candidates filters and projects the catalog into the anchor list, keeping
// the store's iteration order.
func Candidates(store *catalog.Store) []Candidate {
	out := make([]Candidate, 0)
	for _, p := range store.List() {
		if !Eligible(p) {
			continue
		}
		out = append(out, Candidate{
			ID:    p.ID,
			Title: p.Title,
			Brand: p.Brand,
			Image: p.ImageURL,
		})
	}
	return out
}
