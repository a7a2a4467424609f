// Package format provides locale-aware currency, percent and number
// formatting for display values. Pure functions, no state.
package format

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when a caller does not specify one.
var DefaultLocale = language.French

// Currency formats an amount in the given ISO 4217 currency for the locale.
// Unknown currency codes fall back to a plain two-decimal number.
func Currency(tag language.Tag, code string, amount float64) string {
	p := message.NewPrinter(tag)
	unit, err := currency.ParseISO(code)
	if err != nil {
		return p.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(2), number.MinFractionDigits(2)))
	}
	return p.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
}

// Percent formats a percentage value (already scaled to 0-100) with one
// fractional digit for the locale.
func Percent(tag language.Tag, value float64) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Percent(value/100, number.MaxFractionDigits(1)))
}

// Number formats a plain number with locale-appropriate grouping and at most
// two fractional digits.
func Number(tag language.Tag, value float64) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(2)))
}
