package domain

import (
	"reflect"
	"testing"
)

func TestImageRefKind(t *testing.T) {
	tests := []struct {
		ref  ImageRef
		want ImageKind
	}{
		{"https://example.com/a.jpg", ImageURL},
		{"HTTP://EXAMPLE.COM/A.JPG", ImageURL},
		{"data:image/png;base64,iVBORw0KGgo=", ImageDataURL},
		{"data:image/svg+xml;base64,PHN2Zz4=", ImageDataURL},
		{"data:image/bmp;base64,AAAA", ImageUnknown},
		{"ftp://example.com/a.jpg", ImageUnknown},
		{"https://", ImageUnknown},
		{"image1.jpg", ImageUnknown},
		{"", ImageUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.ref), func(t *testing.T) {
			if got := tt.ref.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeImages(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   []ImageRef
	}{
		{"empty column", "", []ImageRef{}},
		{"json null", "null", []ImageRef{}},
		{"canonical array", `["https://a.com/1.jpg","https://a.com/2.jpg"]`, []ImageRef{"https://a.com/1.jpg", "https://a.com/2.jpg"}},
		{"legacy bare url", "https://a.com/1.jpg", []ImageRef{"https://a.com/1.jpg"}},
		{"legacy base64", "data:image/png;base64,AAAA", []ImageRef{"data:image/png;base64,AAAA"}},
		{"legacy json string", `"https://a.com/1.jpg"`, []ImageRef{"https://a.com/1.jpg"}},
		{"legacy object elements", `[{"url":"https://a.com/1.jpg"},"https://a.com/2.jpg"]`, []ImageRef{`{"url":"https://a.com/1.jpg"}`, "https://a.com/2.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeImages(tt.stored); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeImages(%q) = %#v, want %#v", tt.stored, got, tt.want)
			}
		})
	}
}

func TestEncodeImages(t *testing.T) {
	got, err := EncodeImages(nil)
	if err != nil || got != "[]" {
		t.Errorf("EncodeImages(nil) = %q, %v", got, err)
	}

	got, _ = EncodeImages([]ImageRef{"https://a.com/1.jpg"})
	if got != `["https://a.com/1.jpg"]` {
		t.Errorf("EncodeImages = %s", got)
	}
}
