package recommend

// Wire types for the external recommendation engine. Field names match the
// engine's JSON contract; this package decodes but never reinterprets them.

// Request is the body of POST /recommendations/outfit.
type Request struct {
	BaseProductID string `json:"base_product_id"`
	BudgetTier    Tier   `json:"budget_tier"`
	Occasion      string `json:"occasion,omitempty"`
}

// Response is the engine's reply: outfits in presentation order, pre-ranked
// by the engine.
type Response struct {
	Outfits []Outfit `json:"outfits"`
}

// Outfit is one recommended combination.
type Outfit struct {
	MatchScore float64   `json:"match_score"`
	Items      ItemSlots `json:"items"`
	Reasoning  Reasoning `json:"reasoning"`
}

// ItemSlots holds the four outfit slots. A slot may be null or reference a
// product unknown to the catalog; consumers must treat both as unresolved.
type ItemSlots struct {
	Top       *string `json:"top"`
	Bottom    *string `json:"bottom"`
	Footwear  *string `json:"footwear"`
	Accessory *string `json:"accessory"`
}

type Reasoning struct {
	Summary string `json:"summary"`
	Budget  Budget `json:"budget"`
}

// Budget carries the engine's own price aggregation. TotalPrice is
// authoritative; it is never recomputed from slot prices.
type Budget struct {
	TotalPrice float64 `json:"total_price"`
}
