package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgUnknownSlot  = "unknown equipment slot"
	ErrMsgInvalidItem  = "invalid item"
	ErrMsgInvalidMode  = "invalid loot mode"
	ErrMsgInvalidInput = "invalid input"
)

// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnknownSlot  = errors.New(ErrMsgUnknownSlot)
	ErrInvalidItem  = errors.New(ErrMsgInvalidItem)
	ErrInvalidMode  = errors.New(ErrMsgInvalidMode)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
