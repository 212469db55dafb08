package console

// QuitToken ends the session (compared after trimming and case folding)
const QuitToken = "q"

// Text printed around the rolls
const (
	MsgBanner           = "=== Loot Upgrade Roller ==="
	MsgStartWeapon      = "Start item: %s one-handed sword at item level %d"
	MsgStartEquipment   = "Start set: %d %s items at item level %d"
	MsgRollExplanation  = "Every roll creates a new name and a new rarity."
	MsgPrompt           = "Press [Enter] to roll or type 'q' to quit: "
	MsgFarewell         = "Good luck on your loot adventure!"
	MsgCurrentItem      = "Your current item:"
	MsgCurrentEquipment = "Your equipment:"
	MsgItemType         = "Type: One-handed sword"
	MsgItemName         = "Name: %s"
	MsgItemLevel        = "Item level: %d"
	MsgEquipmentLine    = "%s %-*s %s  ilvl %d%s"
	MsgNewMarker        = "  <- new"
	MsgEquipmentRolled  = "Rolled %s."
	MsgSummaryHeader    = "Session summary:"
	MsgSummaryLine      = "  %s: %g"
)

// Line markers for the equipment listing
const (
	MarkerHighlight = ">"
	MarkerNone      = " "
)

// Log messages
const (
	LogMsgQuit       = "Quit requested"
	LogMsgEndOfInput = "Input closed, ending session"
	LogFieldRolls    = "rolls"
)
