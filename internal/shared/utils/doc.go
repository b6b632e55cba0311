package utils

import (
	"encoding/json"
	"fmt"
	"time"
)

// ToDoc flattens an entity into a store document via its json tags.
func ToDoc(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return doc, nil
}

// FromDoc decodes a store document into an entity. Unknown fields in the
// document are ignored, tolerating store-document drift across schema
// revisions.
func FromDoc(doc map[string]any, dest any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

// NowUTC returns the current time as an RFC3339 UTC string, the timestamp
// format every collection stores. Keeping it a string preserves the
// byte-prefix date bucketing the analytics layer depends on.
func NowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
