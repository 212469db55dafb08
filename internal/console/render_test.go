package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootRoller_Go/internal/domain"
)

func TestFormatName_ColorTokens(t *testing.T) {
	tests := []struct {
		rarity domain.Rarity
		token  string
	}{
		{domain.RarityCommon, "\033[90m"},
		{domain.RarityWhite, "\033[97m"},
		{domain.RarityGreen, "\033[92m"},
		{domain.RarityBlue, "\033[94m"},
		{domain.RarityPurple, "\033[95m"},
		{domain.RarityOrange, "\033[38;5;208m"},
	}

	for _, tt := range tests {
		t.Run(tt.rarity.String(), func(t *testing.T) {
			got := FormatName(domain.Item{Name: "Holy Sabre", Rarity: tt.rarity, ItemLevel: 100})
			assert.Equal(t, tt.token+"Holy Sabre\033[0m ("+tt.rarity.String()+")", got)
		})
	}
}

func TestRender_Weapon(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	items := map[domain.Slot]domain.Item{
		domain.SlotWeapon: {Name: "Cursed Nightblade", Rarity: domain.RarityBlue, ItemLevel: 104},
	}
	require.NoError(t, r.Render(domain.ModeWeapon, []domain.Slot{domain.SlotWeapon}, items, nil))

	out := buf.String()
	assert.Contains(t, out, MsgCurrentItem)
	assert.Contains(t, out, MsgItemType)
	assert.Contains(t, out, "Name: \033[94mCursed Nightblade\033[0m (Blue)")
	assert.Contains(t, out, "Item level: 104")
}

func TestRender_EquipmentHighlightsSlot(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	slots := domain.EquipmentSlots()
	items := make(map[domain.Slot]domain.Item)
	for _, slot := range slots {
		items[slot] = domain.Item{Name: "Forgotten Relic", Rarity: domain.RarityCommon, ItemLevel: 100}
	}
	items[domain.SlotFeet] = domain.Item{Name: "Sunforged Ward", Rarity: domain.RarityGreen, ItemLevel: 101}

	highlight := domain.SlotFeet
	require.NoError(t, r.Render(domain.ModeEquipment, slots, items, &highlight))

	out := buf.String()
	assert.Contains(t, out, "Rolled Feet.")
	var marked []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, MarkerHighlight) {
			marked = append(marked, line)
		}
	}
	require.Len(t, marked, 1)
	assert.Contains(t, marked[0], "Feet")
	assert.Contains(t, marked[0], "\033[92mSunforged Ward\033[0m (Green)")
	assert.Contains(t, marked[0], "ilvl 101")
	assert.Contains(t, marked[0], MsgNewMarker)
	assert.Equal(t, len(slots), strings.Count(out, "ilvl "))
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	items := map[domain.Slot]domain.Item{
		domain.SlotWeapon: {Name: "Steel Edge", Rarity: domain.RarityCommon, ItemLevel: 100},
	}
	require.NoError(t, r.Banner(domain.ModeWeapon, []domain.Slot{domain.SlotWeapon}, items))

	assert.Contains(t, buf.String(), MsgBanner)
	assert.Contains(t, buf.String(), "Start item: Common one-handed sword at item level 100")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRenderer_WriteError(t *testing.T) {
	r := NewRenderer(failingWriter{})
	err := r.Farewell()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}

func TestSummary_SortedLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	require.NoError(t, r.Summary(map[string]float64{"loot_rolls_total": 12, "events_published_total": 13}))

	out := buf.String()
	assert.Contains(t, out, MsgSummaryHeader)
	assert.Less(t, strings.Index(out, "events_published_total: 13"), strings.Index(out, "loot_rolls_total: 12"))
}
