// Package format contains display formatting helpers for the operator UI.
package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Money formats a dollar amount with thousands separators and exactly two
// decimal places, e.g. "$1,234.56", "$0.00".
func Money(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// Count formats an integer with thousands separators, e.g. "1,500,000".
func Count(n int64) string {
	return humanize.Comma(n)
}

// Minutes formats a minute quantity for display, e.g. "5.5 min".
func Minutes(v float64) string {
	return fmt.Sprintf("%s min", humanize.CommafWithDigits(v, 1))
}

// Rate formats an engagement rate as a percentage, e.g. "7.95%".
func Rate(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// CountryName resolves a two-letter country code to its English display name.
// Unknown codes are returned as-is.
func CountryName(code string) string {
	// The training set uses "UK"; the region registry spells it "GB".
	lookup := code
	if lookup == "UK" {
		lookup = "GB"
	}
	region, err := language.ParseRegion(lookup)
	if err != nil {
		return code
	}
	name := display.English.Regions().Name(region)
	if name == "" {
		return code
	}
	return name
}
