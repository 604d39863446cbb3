package cart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorruptPayload tags a durable slot payload that failed the strict
// decode. Callers treat it as an empty cart, never as a fatal error.
var ErrCorruptPayload = errors.New("cart payload is corrupt")

// encodeItems serializes the item sequence as a JSON array, the same shape
// the browser storefront kept in localStorage.
func encodeItems(items []LineItem) (string, error) {
	if items == nil {
		items = []LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal cart items: %w", err)
	}
	return string(payload), nil
}

// decodeItems parses a persisted payload back into a line item sequence.
// The decode is strict: unknown fields, non-positive quantities, missing
// product IDs, and duplicate composite keys all reject the whole payload.
func decodeItems(payload string) ([]LineItem, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(payload)))
	dec.DisallowUnknownFields()

	var items []LineItem
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}

	seen := make(map[Key]struct{}, len(items))
	for i, item := range items {
		if item.Product.ID == "" {
			return nil, fmt.Errorf("%w: item %d has no product id", ErrCorruptPayload, i)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %d has quantity %d", ErrCorruptPayload, i, item.Quantity)
		}
		key := item.Key()
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate line item for product %s", ErrCorruptPayload, key.ProductID)
		}
		seen[key] = struct{}{}
	}
	return items, nil
}
