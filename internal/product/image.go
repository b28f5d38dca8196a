package product

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedImageRef is returned when a nested image list cannot be decoded.
var ErrMalformedImageRef = errors.New("malformed image reference")

// ImageKind identifies which variant of ImageRef is populated.
type ImageKind int

const (
	// ImageDirect is a plain URL string.
	ImageDirect ImageKind = iota
	// ImageNested is a JSON-encoded list of URLs stored as a single string,
	// e.g. `["https://example.com/a.png"]`.
	ImageNested
)

// String returns the kind name.
func (k ImageKind) String() string {
	switch k {
	case ImageDirect:
		return "direct"
	case ImageNested:
		return "nested"
	default:
		return "unknown"
	}
}

// ImageRef is one raw entry of a product's image list.
type ImageRef struct {
	Kind ImageKind
	Raw  string
}

// ParseImageRef classifies a raw image entry. A value that is a bracketed list is nested.
func ParseImageRef(raw string) ImageRef {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return ImageRef{Kind: ImageNested, Raw: trimmed}
	}
	return ImageRef{Kind: ImageDirect, Raw: trimmed}
}

// URLs returns the URLs the reference expands to.
func (r ImageRef) URLs() ([]string, error) {
	switch r.Kind {
	case ImageNested:
		var urls []string
		if err := json.Unmarshal([]byte(r.Raw), &urls); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedImageRef, err)
		}
		out := make([]string, 0, len(urls))
		for _, u := range urls {
			if u = strings.TrimSpace(u); u != "" {
				out = append(out, u)
			}
		}
		return out, nil
	case ImageDirect:
		if r.Raw == "" {
			return nil, nil
		}
		return []string{r.Raw}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrMalformedImageRef, r.Kind)
	}
}

// DecodeImages normalizes raw image entries into an ordered list of URLs.
// Entries that fail to decode are dropped; a malformed entry never fails the record.
func DecodeImages(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}

	urls := make([]string, 0, len(raw))
	for _, entry := range raw {
		expanded, err := ParseImageRef(entry).URLs()
		if err != nil {
			continue
		}
		urls = append(urls, expanded...)
	}
	return urls
}
