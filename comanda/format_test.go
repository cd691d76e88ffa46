package comanda

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"21", "R$ 21,00"},
		{"10.5", "R$ 10,50"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.8", "R$ 1.234.567,80"},
		{"-42.1", "-R$ 42,10"},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatalf("bad test input %q: %v", tt.in, err)
		}
		if got := FormatBRL(d); got != tt.want {
			t.Errorf("FormatBRL(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDayAndClock(t *testing.T) {
	ts := time.Date(2024, 3, 5, 9, 7, 0, 0, time.Local)
	if got := FormatDay(ts); got != "05/03/2024" {
		t.Errorf("FormatDay = %q, want '05/03/2024'", got)
	}
	if got := FormatClock(ts); got != "09:07" {
		t.Errorf("FormatClock = %q, want '09:07'", got)
	}
}
