package console

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/osse101/LootRoller_Go/internal/domain"
)

// Renderer writes item state to a terminal using the rarity color tokens.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// FormatName returns the colored item name followed by its rarity,
// e.g. "\033[92mHoly Sabre\033[0m (Green)".
func FormatName(item domain.Item) string {
	return fmt.Sprintf("%s%s%s (%s)", item.Color(), item.Name, domain.ColorReset, item.Rarity)
}

// Banner writes the startup text for the given starting state.
func (r *Renderer) Banner(mode domain.Mode, slots []domain.Slot, items map[domain.Slot]domain.Item) error {
	var b strings.Builder
	b.WriteString(MsgBanner + "\n")

	if len(slots) > 0 {
		first := items[slots[0]]
		if mode == domain.ModeEquipment {
			fmt.Fprintf(&b, MsgStartEquipment+"\n", len(slots), first.Rarity, first.ItemLevel)
		} else {
			fmt.Fprintf(&b, MsgStartWeapon+"\n", first.Rarity, first.ItemLevel)
		}
	}
	b.WriteString(MsgRollExplanation + "\n")

	return r.write(b.String())
}

// Render writes the current state. The single-weapon mode prints the item
// block; the equipment mode lists every slot and marks highlight, if set.
func (r *Renderer) Render(mode domain.Mode, slots []domain.Slot, items map[domain.Slot]domain.Item, highlight *domain.Slot) error {
	if mode == domain.ModeEquipment {
		return r.write(formatEquipment(slots, items, highlight))
	}
	return r.write(formatItem(items[domain.SlotWeapon]))
}

// Prompt writes the input prompt without a trailing newline
func (r *Renderer) Prompt() error {
	return r.write("\n" + MsgPrompt)
}

// Farewell writes the quit message
func (r *Renderer) Farewell() error {
	return r.write("\n" + MsgFarewell + "\n")
}

func formatItem(item domain.Item) string {
	var b strings.Builder
	b.WriteString("\n" + MsgCurrentItem + "\n")
	b.WriteString(MsgItemType + "\n")
	fmt.Fprintf(&b, MsgItemName+"\n", FormatName(item))
	fmt.Fprintf(&b, MsgItemLevel+"\n", item.ItemLevel)
	return b.String()
}

func formatEquipment(slots []domain.Slot, items map[domain.Slot]domain.Item, highlight *domain.Slot) string {
	width := 0
	for _, slot := range slots {
		if n := len(slot.Label()); n > width {
			width = n
		}
	}

	var b strings.Builder
	if highlight != nil {
		fmt.Fprintf(&b, "\n"+MsgEquipmentRolled+"\n", highlight.Label())
	}
	b.WriteString("\n" + MsgCurrentEquipment + "\n")
	for _, slot := range slots {
		marker, suffix := MarkerNone, ""
		if highlight != nil && *highlight == slot {
			marker, suffix = MarkerHighlight, MsgNewMarker
		}
		item := items[slot]
		fmt.Fprintf(&b, MsgEquipmentLine+"\n", marker, width, slot.Label(), FormatName(item), item.ItemLevel, suffix)
	}
	return b.String()
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.out, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Summary writes name/value pairs sorted by name, one per line.
func (r *Renderer) Summary(totals map[string]float64) error {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("\n" + MsgSummaryHeader + "\n")
	for _, name := range names {
		fmt.Fprintf(&b, MsgSummaryLine+"\n", name, totals[name])
	}
	return r.write(b.String())
}
