// Package format renders numbers and currency amounts for the proposal
// document with en-US digit grouping.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Number formats n with the given fraction digits and thousands separators
// (e.g., "12,345.68"). A nil value renders as the placeholder; absence is an
// explicit "not applicable" marker, never zero or blank.
func Number(n *float64, digits int, placeholder string) string {
	if n == nil {
		return placeholder
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", digits), *n)
}

// Currency formats n as Number does, prefixed with the currency symbol
// (e.g., "$12,345.68"). A nil value renders as the placeholder without a
// symbol.
func Currency(n *float64, symbol string, digits int, placeholder string) string {
	if n == nil {
		return placeholder
	}
	return symbol + Number(n, digits, placeholder)
}

// Ptr returns a pointer to v, for passing always-present figures to Number
// and Currency.
func Ptr(v float64) *float64 {
	return &v
}
