package equipment

import (
	"fmt"

	"github.com/osse101/LootRoller_Go/internal/domain"
)

// Set is a fixed layout of slots, each always holding exactly one item.
type Set struct {
	mode  domain.Mode
	order []domain.Slot
	items map[domain.Slot]domain.Item
}

// NewSet builds the slot layout of mode and fills every slot through newItem.
// newItem is called once per slot, in slot order.
func NewSet(mode domain.Mode, newItem func(slot domain.Slot) domain.Item) (*Set, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, mode)
	}

	order := mode.Slots()
	s := &Set{
		mode:  mode,
		order: order,
		items: make(map[domain.Slot]domain.Item, len(order)),
	}
	for _, slot := range order {
		item := newItem(slot)
		if !item.IsValid() {
			return nil, fmt.Errorf("%w for slot %s: %+v", domain.ErrInvalidItem, slot, item)
		}
		s.items[slot] = item
	}
	return s, nil
}

// Mode returns the layout the set was built for
func (s *Set) Mode() domain.Mode {
	return s.mode
}

// Slots returns the slot order. The returned slice is a copy.
func (s *Set) Slots() []domain.Slot {
	out := make([]domain.Slot, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of slots
func (s *Set) Len() int {
	return len(s.order)
}

// Item returns the item held by slot
func (s *Set) Item(slot domain.Slot) (domain.Item, bool) {
	item, ok := s.items[slot]
	return item, ok
}

// Pick selects the roll target and returns it with its current item. A
// single-slot set always returns its slot; otherwise intn(len) chooses
// uniformly from the slot order. A draw outside the slot order falls back to
// the first slot and is reported as an error.
func (s *Set) Pick(intn func(int) int) (domain.Slot, domain.Item, error) {
	idx := 0
	var err error
	if len(s.order) > 1 {
		idx = intn(len(s.order))
		if idx < 0 || idx >= len(s.order) {
			err = fmt.Errorf("%w: slot draw %d outside [0,%d)", domain.ErrInvalidInput, idx, len(s.order))
			idx = 0
		}
	}
	slot := s.order[idx]
	return slot, s.items[slot], err
}

// Replace swaps the item of an existing slot and returns the previous one.
func (s *Set) Replace(slot domain.Slot, item domain.Item) (domain.Item, error) {
	previous, ok := s.items[slot]
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrUnknownSlot, slot)
	}
	if !item.IsValid() {
		return domain.Item{}, fmt.Errorf("%w for slot %s: %+v", domain.ErrInvalidItem, slot, item)
	}
	s.items[slot] = item
	return previous, nil
}

// Snapshot returns a copy of the slot map safe to hand to renderers and
// event subscribers.
func (s *Set) Snapshot() map[domain.Slot]domain.Item {
	out := make(map[domain.Slot]domain.Item, len(s.items))
	for slot, item := range s.items {
		out[slot] = item
	}
	return out
}
