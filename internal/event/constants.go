package event

// EventSchemaVersion is stamped on every event built by this package
const EventSchemaVersion = "1.0"

// ErrMsgHandlersFailedFormat wraps the joined handler errors of one publish
const ErrMsgHandlersFailedFormat = "%d handler(s) failed for event %s: %w"
