package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. Payloads that are not already a T
// (for example a generic map) are converted by re-encoding them as JSON.
func DecodePayload[T any](payload interface{}) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}

	var out T
	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("failed to encode payload: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode payload as %T: %w", out, err)
	}
	return out, nil
}
