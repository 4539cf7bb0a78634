// Package format renders values the way the admin screens present them:
// Bolivian locale, BOB currency, short Spanish month labels.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-BO"))

// Currency formats an amount in the given ISO currency code (the store
// default is BOB). Unknown codes fall back to a plain decimal.
func Currency(v float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return printer.Sprintf("%.2f", v)
	}
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(v)))
}

// Number formats a plain decimal with two digits, locale-aware.
func Number(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Date renders a timestamp as dd/mm/yyyy hh:mm, or "N/A" when absent.
func Date(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("02/01/2006 15:04")
}

var spanishMonths = [12]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// Month renders a series date as a short Spanish month label ("ene 2025").
// Unparseable input is returned unchanged.
func Month(date string) string {
	for _, layout := range []string{"2006-01-02", "2006-01", time.RFC3339} {
		if t, err := time.Parse(layout, date); err == nil {
			return fmt.Sprintf("%s %d", spanishMonths[t.Month()-1], t.Year())
		}
	}
	return date
}

// Metric renders an optional model metric with the given precision, or
// "N/A" when the backend did not report it.
func Metric(v *float64, decimals int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}
