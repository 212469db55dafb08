package domain

// Rarity is the ordered quality tier of a rolled item. The zero value is the
// lowest tier; higher values rank higher.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityWhite
	RarityGreen
	RarityBlue
	RarityPurple
	RarityOrange
)

// ANSI color tokens, one per rarity tier
const (
	ColorCommon = "\033[90m"
	ColorWhite  = "\033[97m"
	ColorGreen  = "\033[92m"
	ColorBlue   = "\033[94m"
	ColorPurple = "\033[95m"
	ColorOrange = "\033[38;5;208m"

	// ColorReset ends every colored segment
	ColorReset = "\033[0m"
)

// rarityInfo holds the fixed display and selection data of a tier.
type rarityInfo struct {
	name   string
	weight float64 // percent
	color  string
}

// rarityTable is indexed by Rarity and is in rank order (lowest first).
// Selection walks it in this same order when accumulating weights.
var rarityTable = [...]rarityInfo{
	RarityCommon: {"Common", 6.25, ColorCommon},
	RarityWhite:  {"White", 60.95, ColorWhite},
	RarityGreen:  {"Green", 31.25, ColorGreen},
	RarityBlue:   {"Blue", 1.25, ColorBlue},
	RarityPurple: {"Purple", 0.25, ColorPurple},
	RarityOrange: {"Orange", 0.05, ColorOrange},
}

// Rarities returns every tier in rank order, lowest first.
func Rarities() []Rarity {
	out := make([]Rarity, len(rarityTable))
	for i := range rarityTable {
		out[i] = Rarity(i)
	}
	return out
}

// LowestRarity is the tier every fresh item starts with.
func LowestRarity() Rarity { return RarityCommon }

// HighestRarity is the top tier and the fallback for unmatched rolls.
func HighestRarity() Rarity { return Rarity(len(rarityTable) - 1) }

// IsValid reports whether r is one of the defined tiers
func (r Rarity) IsValid() bool {
	return r >= 0 && int(r) < len(rarityTable)
}

// Rank returns the ordinal position of the tier, 0 being the lowest.
func (r Rarity) Rank() int {
	return int(r)
}

// String returns the display name of the tier
func (r Rarity) String() string {
	if !r.IsValid() {
		return "Unknown"
	}
	return rarityTable[r].name
}

// Weight returns the selection weight of the tier in percent
func (r Rarity) Weight() float64 {
	if !r.IsValid() {
		return 0
	}
	return rarityTable[r].weight
}

// Color returns the ANSI color token of the tier
func (r Rarity) Color() string {
	if !r.IsValid() {
		return ColorReset
	}
	return rarityTable[r].color
}
