package comanda

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatBRL renders a value as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDay renders a time as dd/mm/yyyy.
func FormatDay(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatClock renders the local wall-clock time of t as hh:mm.
func FormatClock(t time.Time) string {
	return t.In(time.Local).Format("15:04")
}
