package scraper

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var priceJunk = regexp.MustCompile(`[^\d.,]`)

// ParsePrice turns a scraped price string into a decimal. It strips anything
// that is not a digit, comma or period, then treats the comma as the decimal
// separator. Best-effort heuristic matched to the upstream site's formatting,
// not a locale-aware parser; malformed input yields zero.
func ParsePrice(text string) decimal.Decimal {
	clean := priceJunk.ReplaceAllString(text, "")
	clean = strings.ReplaceAll(clean, ",", ".")
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return d
}
