// Package format holds the pure display-formatting helpers shared by the
// web panels and API payloads.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer provides locale-aware number formatting (thousands grouping).
var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats v as a dollar amount with two decimals and locale-aware
// grouping. Negative values put the sign before the dollar sign, so -1.23
// renders as "-$1.23".
func Currency(v float64) string {
	if v < 0 {
		return printer.Sprintf("-$%.2f", -v)
	}
	return printer.Sprintf("$%.2f", v)
}

// Percent formats v as a percentage with two decimals, prefixing "+" for
// non-negative values.
func Percent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// Volume renders a raw share/contract count in millions with one decimal,
// e.g. 45678900 -> "45.7M".
func Volume(v int64) string {
	return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
}

// Confidence renders a 0..1 confidence as a rounded integer percentage.
func Confidence(c float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(c*100)))
}

// ImpliedVol renders a fractional implied volatility as a percentage with
// one decimal, e.g. 0.12 -> "12.0%".
func ImpliedVol(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// ChangeClass maps the sign of v to a semantic CSS class. Zero counts as
// positive.
func ChangeClass(v float64) string {
	if v >= 0 {
		return "positive"
	}
	return "negative"
}

// BadgeVariant maps the sign of v to a badge variant name. Zero counts as
// positive.
func BadgeVariant(v float64) string {
	if v >= 0 {
		return "success"
	}
	return "destructive"
}
