package domain

// Mode selects which equipment layout a session rolls on.
type Mode string

const (
	// ModeWeapon rolls a single one-handed weapon
	ModeWeapon Mode = "weapon"
	// ModeEquipment rolls a full set of equipment slots
	ModeEquipment Mode = "equipment"
)

// IsValid reports whether m is a known mode
func (m Mode) IsValid() bool {
	return m == ModeWeapon || m == ModeEquipment
}

// Slots returns the slot layout of the mode.
func (m Mode) Slots() []Slot {
	if m == ModeEquipment {
		return EquipmentSlots()
	}
	return []Slot{SlotWeapon}
}
