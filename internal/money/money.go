package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// Rupiah renders an amount in the smallest denomination for display,
// e.g. 12000 -> "Rp12.000". Pure formatting, no rounding.
func Rupiah(n int64) string {
	return printer.Sprintf("Rp%v", number.Decimal(n))
}
