package http

import (
	"strings"

	"github.com/bojanz/currency"
	"github.com/govalues/decimal"
)

var eurFormatter = currency.NewFormatter(currency.NewLocale("de-DE"))

// formatEUR renders an amount the way a de-DE locale shows euros, e.g. "1.234,50 €".
func formatEUR(d decimal.Decimal) string {
	amount, err := currency.NewAmount(d.String(), "EUR")
	if err != nil {
		return d.String() + " €"
	}
	s := eurFormatter.Format(amount.Round())
	return strings.ReplaceAll(s, "\u00a0", " ")
}
