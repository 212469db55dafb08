package domain

// Slot identifies an equipment position.
type Slot string

// SlotWeapon is the only slot of the single-weapon mode
const SlotWeapon Slot = "weapon"

// Equipment slots of the full-set mode
const (
	SlotHead      Slot = "head"
	SlotNeck      Slot = "neck"
	SlotShoulders Slot = "shoulders"
	SlotBack      Slot = "back"
	SlotChest     Slot = "chest"
	SlotWrist     Slot = "wrist"
	SlotHands     Slot = "hands"
	SlotWaist     Slot = "waist"
	SlotLegs      Slot = "legs"
	SlotFeet      Slot = "feet"
	SlotFinger1   Slot = "finger_1"
	SlotFinger2   Slot = "finger_2"
	SlotTrinket1  Slot = "trinket_1"
	SlotTrinket2  Slot = "trinket_2"
	SlotMainHand  Slot = "main_hand"
)

// EquipmentSlots returns the fixed slot order of the full-set mode.
func EquipmentSlots() []Slot {
	return []Slot{
		SlotHead,
		SlotNeck,
		SlotShoulders,
		SlotBack,
		SlotChest,
		SlotWrist,
		SlotHands,
		SlotWaist,
		SlotLegs,
		SlotFeet,
		SlotFinger1,
		SlotFinger2,
		SlotTrinket1,
		SlotTrinket2,
		SlotMainHand,
	}
}

var slotLabels = map[Slot]string{
	SlotWeapon:    "Weapon",
	SlotHead:      "Head",
	SlotNeck:      "Neck",
	SlotShoulders: "Shoulders",
	SlotBack:      "Back",
	SlotChest:     "Chest",
	SlotWrist:     "Wrist",
	SlotHands:     "Hands",
	SlotWaist:     "Waist",
	SlotLegs:      "Legs",
	SlotFeet:      "Feet",
	SlotFinger1:   "Finger 1",
	SlotFinger2:   "Finger 2",
	SlotTrinket1:  "Trinket 1",
	SlotTrinket2:  "Trinket 2",
	SlotMainHand:  "Main Hand",
}

// Label returns the human readable slot name
func (s Slot) Label() string {
	if label, ok := slotLabels[s]; ok {
		return label
	}
	return string(s)
}
