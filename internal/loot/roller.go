package loot

import (
	"context"

	"github.com/osse101/LootRoller_Go/internal/domain"
	"github.com/osse101/LootRoller_Go/internal/logger"
)

// Roller draws item levels and rarities from an injected random source.
type Roller struct {
	rnd func() float64 // Injectable for testing
}

// NewRoller creates a roller drawing uniform values in [0,1) from rnd.
func NewRoller(rnd func() float64) *Roller {
	return &Roller{rnd: rnd}
}

// RollItemLevel returns current, current+1 or current+2.
func (r *Roller) RollItemLevel(current int) int {
	return LevelForRoll(current, r.rnd())
}

// RollRarity draws a rarity tier from the weighted distribution.
func (r *Roller) RollRarity(ctx context.Context) domain.Rarity {
	roll := r.rnd() * RarityRollScale
	rarity, matched := rarityForRoll(roll)
	if !matched {
		logger.FromContext(ctx).Debug(LogMsgRarityFallback, LogFieldRoll, roll)
	}
	return rarity
}
