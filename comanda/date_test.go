package comanda

import (
	"errors"
	"testing"
	"time"
)

func TestDayKeySameLocalDay(t *testing.T) {
	a, err := DayKey("2024-03-05T10:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := DayKey("2024-03-05T23:59:59")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("same local day produced different keys: %s vs %s", a, b)
	}
	if a != "2024-03-05" {
		t.Errorf("expected '2024-03-05', got '%s'", a)
	}
}

func TestDayKeyDateOnly(t *testing.T) {
	key, err := DayKey("2024-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "2024-03-05" {
		t.Errorf("expected '2024-03-05', got '%s'", key)
	}
}

func TestDayKeyTrimsWhitespace(t *testing.T) {
	key, err := DayKey("  2024-03-05T08:00:00  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "2024-03-05" {
		t.Errorf("expected '2024-03-05', got '%s'", key)
	}
}

func TestDayKeyFractionalSecondsNoOffset(t *testing.T) {
	for _, raw := range []string{
		"2024-03-05T10:00:00.123",
		"2024-03-05T10:00:00.123456789",
		"2024-03-05 10:00:00.5",
	} {
		key, err := DayKey(raw)
		if err != nil {
			t.Fatalf("DayKey(%q): unexpected error: %v", raw, err)
		}
		if key != "2024-03-05" {
			t.Errorf("DayKey(%q) = %q, want '2024-03-05'", raw, key)
		}
	}
}

func TestDayKeyMalformed(t *testing.T) {
	for _, raw := range []string{"", "   ", "not-a-date", "05/03/2024"} {
		if _, err := DayKey(raw); !errors.Is(err, ErrBadDate) {
			t.Errorf("DayKey(%q): expected ErrBadDate, got %v", raw, err)
		}
	}
}

func TestDayKeyTimeMatchesDayKey(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 30, 0, 0, time.Local)
	key, err := DayKey("2024-03-05T14:30:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := DayKeyTime(ts); got != key {
		t.Errorf("DayKeyTime and DayKey disagree: %s vs %s", got, key)
	}
}
