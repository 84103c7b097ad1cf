package recommend

// Tier is the coarse price-preference signal sent to the recommendation
// engine.
type Tier string

const (
	TierLow  Tier = "low"
	TierMid  Tier = "mid"
	TierHigh Tier = "high"
)

// DefaultOccasion is what the client sends when the caller does not pick an
// occasion; the engine may ignore it.
const DefaultOccasion = "casual"

// TierInfo describes one budget tier for the UI selector.
type TierInfo struct {
	Tier  Tier   `json:"tier"`
	Label string `json:"label"`
}

// Tiers lists the supported budget tiers in presentation order.
func Tiers() []TierInfo {
	return []TierInfo{
		{Tier: TierLow, Label: "Low (Budget-friendly)"},
		{Tier: TierMid, Label: "Mid (Balanced)"},
		{Tier: TierHigh, Label: "High (Premium)"},
	}
}

// ParseTier maps the caller's tier selection onto the supported set,
// defaulting to mid when unset. Unknown values are rejected rather than
// silently coerced.
func ParseTier(s string) (Tier, bool) {
	switch Tier(s) {
	case "":
		return TierMid, true
	case TierLow, TierMid, TierHigh:
		return Tier(s), true
	default:
		return "", false
	}
}
