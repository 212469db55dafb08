package upgrade

// Log messages
const (
	LogMsgSessionStarted      = "Session started"
	LogMsgItemRolled          = "Item rolled"
	LogMsgDowngradeSuppressed = "Same-level downgrade suppressed, keeping rarity"
	LogMsgNameFallback        = "Name pool exhausted, using numbered fallback"
	LogMsgPickFailed          = "Slot draw out of range, rolling first slot"
	LogMsgReplaceFailed       = "Failed to replace rolled item"
	LogMsgPublishFailed       = "Failed to publish event"
)

// Log field keys for structured logging
const (
	LogFieldMode      = "mode"
	LogFieldSlot      = "slot"
	LogFieldSequence  = "sequence"
	LogFieldOldLevel  = "old_level"
	LogFieldNewLevel  = "new_level"
	LogFieldCandidate = "candidate"
	LogFieldRarity    = "rarity"
	LogFieldName      = "name"
	LogFieldEvent     = "event"
	LogFieldError     = "error"
)
