package loot

import (
	"github.com/osse101/LootRoller_Go/internal/domain"
)

// RarityForRoll maps a draw on the [0,100) scale to a rarity tier. Tiers are
// walked in rank order while accumulating their weights; the first tier
// whose cumulative weight meets the roll wins. A roll the accumulated weights
// never reach (float rounding, or exactly 100) yields the top tier.
func RarityForRoll(roll float64) domain.Rarity {
	rarity, _ := rarityForRoll(roll)
	return rarity
}

func rarityForRoll(roll float64) (domain.Rarity, bool) {
	cumulative := 0.0
	for _, r := range domain.Rarities() {
		cumulative += r.Weight()
		if roll <= cumulative {
			return r, true
		}
	}
	return domain.HighestRarity(), false
}
