package tui

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/catalogview/internal/product"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// missingValue is shown for fields the API did not provide.
const missingValue = "-"

// FormatPrice renders a price with a dollar sign, thousand separators and two
// decimals. Example: 1234.5 renders as "$1,234.50".
func FormatPrice(d decimal.Decimal) string {
	r := d.Round(2) //nolint:mnd // Cents.
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}
	whole := r.Truncate(0)
	cents := r.Sub(whole).StringFixed(2) //nolint:mnd // Cents.
	return sign + "$" + printer.Sprintf("%d", whole.IntPart()) + strings.TrimPrefix(cents, "0")
}

// FormatRecordPrice is FormatPrice, or "-" when the record has no price.
func FormatRecordPrice(rec product.Record) string {
	if rec.PriceMissing {
		return missingValue
	}
	return FormatPrice(rec.Price)
}

// truncate shortens s to at most maxLen runes, ending with "..." when cut.
func truncate(s string, maxLen int) string {
	const ellipsis = "..."
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= len(ellipsis) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}
