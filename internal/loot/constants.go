package loot

// ============================================================================
// Item Level Thresholds
// ============================================================================

// LevelUnchangedThreshold is the maximum roll (<70%) that keeps the item level.
const LevelUnchangedThreshold = 0.70

// LevelPlusOneThreshold is the maximum roll (<90%) that raises the item level by one.
// Anything at or above it raises the level by two.
const LevelPlusOneThreshold = 0.90

// ============================================================================
// Rarity Roll
// ============================================================================

// RarityRollScale maps a [0,1) draw onto the percent scale of the rarity weights.
const RarityRollScale = 100.0

// ============================================================================
// Log Messages
// ============================================================================

// LogMsgRarityFallback is logged when a roll is not covered by the summed weights.
const LogMsgRarityFallback = "Rarity roll exceeded cumulative weight, using top tier"

// LogFieldRoll is the structured log key for a raw draw.
const LogFieldRoll = "roll"
