package validation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
)

// NormalizeImages converts a product image payload into the canonical list.
//
// Accepted shapes: a JSON array; a JSON string holding either JSON (array or scalar) or a
// single raw reference; any other single value. The result must be non-empty and every
// element must be an http(s) URL or a base64 image data URL.
func NormalizeImages(raw json.RawMessage) ([]domain.ImageRef, error) {
	items, err := imageShape(raw)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: image list is empty", domain.ErrInvalidImageFormat)
	}

	refs := make([]domain.ImageRef, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is not a string", domain.ErrInvalidImageFormat, i)
		}
		ref := domain.ImageRef(s)
		if !ref.Valid() {
			return nil, fmt.Errorf("%w: element %d", domain.ErrInvalidImageFormat, i)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// NormalizeCollectionImages applies the same shape rules to collection images.
// The list may be empty and elements only need to be strings.
func NormalizeCollectionImages(raw json.RawMessage) ([]domain.ImageRef, error) {
	if isNull(raw) {
		return []domain.ImageRef{}, nil
	}
	items, err := imageShape(raw)
	if err != nil {
		return nil, err
	}

	refs := make([]domain.ImageRef, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is not a string", domain.ErrInvalidImageFormat, i)
		}
		refs = append(refs, domain.ImageRef(s))
	}
	return refs, nil
}

func imageShape(raw json.RawMessage) ([]interface{}, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: image is empty", domain.ErrInvalidImageFormat)
	}

	switch trimmed[0] {
	case '[':
		var items []interface{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImageFormat, err)
		}
		return items, nil
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImageFormat, err)
		}
		var inner interface{}
		if err := json.Unmarshal([]byte(text), &inner); err != nil {
			// Not JSON: a single raw reference
			return []interface{}{text}, nil
		}
		if items, ok := inner.([]interface{}); ok {
			return items, nil
		}
		return []interface{}{inner}, nil
	default:
		var single interface{}
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImageFormat, err)
		}
		return []interface{}{single}, nil
	}
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
