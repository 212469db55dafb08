package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Roll metric names
const (
	MetricNameRollsTotal           = "loot_rolls_total"
	MetricNameRaritiesRolled       = "loot_rarities_rolled_total"
	MetricNameDowngradesSuppressed = "loot_downgrades_suppressed_total"
	MetricNameNameFallbacks        = "loot_name_fallbacks_total"
	MetricNameItemLevel            = "loot_item_level"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Roll metric help text
const (
	HelpTextRollsTotal           = "Total number of rolls per equipment slot"
	HelpTextRaritiesRolled       = "Total number of items per resulting rarity"
	HelpTextDowngradesSuppressed = "Total number of same-level downgrades that kept the previous rarity"
	HelpTextNameFallbacks        = "Total number of numbered fallback names"
	HelpTextItemLevel            = "Current item level per equipment slot"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelType   = "type"
	LabelSlot   = "slot"
	LabelRarity = "rarity"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgSummary           = "Session metrics"
)
