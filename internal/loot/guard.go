package loot

import (
	"github.com/osse101/LootRoller_Go/internal/domain"
)

// ResolveRarity decides which rarity a rolled item ends up with. A roll that
// keeps the item level must not show a lower tier than the current item, so
// in that case the current rarity is kept and suppressed reports true. Any
// roll that raises the level is applied as-is, even when the tier drops.
func ResolveRarity(current domain.Item, newLevel int, candidate domain.Rarity) (rarity domain.Rarity, suppressed bool) {
	if newLevel == current.ItemLevel && candidate.Rank() < current.Rarity.Rank() {
		return current.Rarity, true
	}
	return candidate, false
}
