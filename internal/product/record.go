// Package product defines the product record fetched from the catalog API and
// the normalization applied to it at load time.
package product

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// PlaceholderImage is shown when a record has no usable image reference.
const PlaceholderImage = "https://via.placeholder.com/80"

// Record is one product from the catalog API.
// Records are immutable snapshots: nothing in this module mutates a Record after decoding.
type Record struct {
	ID     int
	Title  string
	Price  decimal.Decimal
	Images []string

	// PriceMissing is set when the upstream object had no price. Such records
	// sort below every priced record.
	PriceMissing bool
}

// apiProduct mirrors the upstream JSON contract. Fields other than these are ignored.
type apiProduct struct {
	ID     int              `json:"id"`
	Title  string           `json:"title"`
	Price  *decimal.Decimal `json:"price"`
	Images json.RawMessage  `json:"images"`
}

// UnmarshalJSON decodes an upstream product and normalizes its image references.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw apiProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding product: %w", err)
	}

	*r = Record{
		ID:     raw.ID,
		Title:  raw.Title,
		Images: DecodeImages(rawImageList(raw.Images)),
	}
	if raw.Price != nil {
		r.Price = *raw.Price
	} else {
		r.PriceMissing = true
	}
	return nil
}

// rawImageList accepts either a JSON array of strings or a single string.
// Anything else yields no images.
func rawImageList(data json.RawMessage) []string {
	if len(data) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		return list
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		return []string{single}
	}

	return nil
}

// PrimaryImage returns the first valid image URL, or placeholder if there is none.
func (r Record) PrimaryImage(placeholder string) string {
	for _, img := range r.Images {
		if IsValidImageURL(img) {
			return img
		}
	}
	return placeholder
}

// IsValidImageURL reports whether s is an absolute http(s) URL with a host.
func IsValidImageURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Clone returns a copy of r whose Images slice does not alias r's.
func (r Record) Clone() Record {
	c := r
	if r.Images != nil {
		c.Images = append([]string(nil), r.Images...)
	}
	return c
}
