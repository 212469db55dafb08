package loot

// LevelForRoll returns the item level after a roll in [0,1):
// 70% unchanged, 20% +1, 10% +2.
func LevelForRoll(current int, roll float64) int {
	switch {
	case roll < LevelUnchangedThreshold:
		return current
	case roll < LevelPlusOneThreshold:
		return current + 1
	default:
		return current + 2
	}
}
