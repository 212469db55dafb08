package domain

// StartItemLevel is the item level every slot starts at
const StartItemLevel = 100

// Item is a rolled piece of equipment. Items are values: a roll builds a new
// Item and replaces the old one instead of mutating it.
type Item struct {
	Name      string `json:"name"`
	Rarity    Rarity `json:"rarity"`
	ItemLevel int    `json:"item_level"`
}

// Color returns the color token of the item's rarity
func (i Item) Color() string {
	return i.Rarity.Color()
}

// IsValid reports whether the item carries a name, a defined rarity and a
// non-negative item level.
func (i Item) IsValid() bool {
	return i.Name != "" && i.Rarity.IsValid() && i.ItemLevel >= 0
}
