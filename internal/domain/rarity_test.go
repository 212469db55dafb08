package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRarities_RankOrder(t *testing.T) {
	rarities := Rarities()

	assert.Equal(t, []Rarity{RarityCommon, RarityWhite, RarityGreen, RarityBlue, RarityPurple, RarityOrange}, rarities)
	for i, r := range rarities {
		assert.Equal(t, i, r.Rank())
	}
	assert.Equal(t, RarityCommon, LowestRarity())
	assert.Equal(t, RarityOrange, HighestRarity())
}

func TestRarity_Weights(t *testing.T) {
	expected := []float64{6.25, 60.95, 31.25, 1.25, 0.25, 0.05}

	total := 0.0
	for i, r := range Rarities() {
		assert.Equal(t, expected[i], r.Weight(), "weight of %s", r)
		total += r.Weight()
	}
	assert.InDelta(t, 100.0, total, 1e-9)
}

func TestRarity_Colors(t *testing.T) {
	assert.Equal(t, "\033[90m", RarityCommon.Color())
	assert.Equal(t, "\033[97m", RarityWhite.Color())
	assert.Equal(t, "\033[92m", RarityGreen.Color())
	assert.Equal(t, "\033[94m", RarityBlue.Color())
	assert.Equal(t, "\033[95m", RarityPurple.Color())
	assert.Equal(t, "\033[38;5;208m", RarityOrange.Color())
	assert.Equal(t, "\033[0m", ColorReset)
}

func TestRarity_Invalid(t *testing.T) {
	for _, r := range []Rarity{-1, 6, 42} {
		assert.False(t, r.IsValid())
		assert.Equal(t, "Unknown", r.String())
		assert.Equal(t, 0.0, r.Weight())
		assert.Equal(t, ColorReset, r.Color())
	}
}

func TestItem_IsValid(t *testing.T) {
	assert.True(t, Item{Name: "Steel Edge", Rarity: RarityCommon, ItemLevel: 0}.IsValid())
	assert.False(t, Item{Rarity: RarityCommon, ItemLevel: 100}.IsValid())
	assert.False(t, Item{Name: "x", Rarity: Rarity(9), ItemLevel: 100}.IsValid())
	assert.False(t, Item{Name: "x", Rarity: RarityCommon, ItemLevel: -1}.IsValid())
}

func TestMode_Slots(t *testing.T) {
	assert.Equal(t, []Slot{SlotWeapon}, ModeWeapon.Slots())
	assert.Len(t, ModeEquipment.Slots(), 15)
	assert.True(t, ModeEquipment.IsValid())
	assert.False(t, Mode("satchel").IsValid())

	seen := make(map[Slot]bool)
	for _, s := range EquipmentSlots() {
		assert.False(t, seen[s], "duplicate slot %s", s)
		seen[s] = true
		assert.NotEqual(t, string(s), s.Label(), "slot %s should have a label", s)
	}
}
