// Package codec converts domain records to and from the JSON text stored
// under each top-level key.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedStoredValue marks stored text that does not decode into the
// expected shape.
var ErrMalformedStoredValue = errors.New("malformed stored value")

func Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return string(b), nil
}

// Decode parses raw into a T. Empty input or the literal "null" yields the
// zero T without error.
func Decode[T any](raw string) (T, error) {
	var out T
	if raw == "" || raw == "null" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrMalformedStoredValue, err)
	}
	return out, nil
}
