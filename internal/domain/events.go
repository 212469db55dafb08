package domain

// Event types published on the session event bus
const (
	// EventTypeItemRolled is published once per roll, after the target slot
	// has been replaced
	EventTypeItemRolled = "item.rolled"

	// EventTypeSessionStarted is published when the starting set is built
	EventTypeSessionStarted = "session.started"
)

// ItemRolledPayload describes one slot replacement
type ItemRolledPayload struct {
	Sequence            int    `json:"sequence"`
	Slot                Slot   `json:"slot"`
	Previous            Item   `json:"previous"`
	Item                Item   `json:"item"`
	CandidateRarity     Rarity `json:"candidate_rarity"`
	DowngradeSuppressed bool   `json:"downgrade_suppressed"`
	NameFallback        bool   `json:"name_fallback"`
}

// SessionStartedPayload describes the starting equipment of a session
type SessionStartedPayload struct {
	Mode  Mode          `json:"mode"`
	Items map[Slot]Item `json:"items"`
}
