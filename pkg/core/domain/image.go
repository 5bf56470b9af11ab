package domain

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
)

// ImageRef is one entry of an image list: either an http(s) URL or a base64 image data URL.
// Rows written before the list format may also hold other text (ImageUnknown).
type ImageRef string

// ImageKind classifies an ImageRef
type ImageKind int

const (
	ImageUnknown ImageKind = iota
	ImageURL
	ImageDataURL
)

var dataURLPattern = regexp.MustCompile(`^data:image/(png|jpg|jpeg|gif|webp|svg\+xml);base64,`)

// Kind reports which variant r holds.
func (r ImageRef) Kind() ImageKind {
	s := string(r)
	if dataURLPattern.MatchString(s) {
		return ImageDataURL
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		if u, err := url.Parse(s); err == nil && u.Host != "" {
			return ImageURL
		}
	}
	return ImageUnknown
}

// Valid reports whether r is a URL or a data URL.
func (r ImageRef) Valid() bool {
	return r.Kind() != ImageUnknown
}

// DecodeImages reads an image column. It accepts every shape the column has held:
// empty, a bare URL or base64 string, a JSON scalar, and a JSON array whose elements are
// strings or objects. Non-string elements are kept as compact JSON text.
func DecodeImages(stored string) []ImageRef {
	refs := []ImageRef{}
	if strings.TrimSpace(stored) == "" {
		return refs
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(stored), &parsed); err != nil {
		return append(refs, ImageRef(stored))
	}

	switch v := parsed.(type) {
	case nil:
		return refs
	case []interface{}:
		for _, item := range v {
			refs = append(refs, toImageRef(item))
		}
		return refs
	default:
		return append(refs, toImageRef(v))
	}
}

// EncodeImages renders the canonical column value: a JSON array of strings.
func EncodeImages(refs []ImageRef) (string, error) {
	if refs == nil {
		refs = []ImageRef{}
	}
	b, err := json.Marshal(refs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func toImageRef(v interface{}) ImageRef {
	if s, ok := v.(string); ok {
		return ImageRef(s)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return ImageRef(b)
}
