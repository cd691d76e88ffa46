package comanda

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrBadDate marks a timestamp that could not be parsed. Filtering treats it
// as "does not match the reference day" rather than a fault.
var ErrBadDate = errors.New("unparseable date")

const dayLayout = "2006-01-02"

// Layouts the backend has been seen emitting. Timestamps without an explicit
// offset are interpreted in local time, matching how the listing screens
// group comandas by day.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	dayLayout,
}

// DayKey converts a backend timestamp string into its local calendar-day key
// in YYYY-MM-DD form. Two timestamps on the same local day yield equal keys
// regardless of their time-of-day components.
func DayKey(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrBadDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return DayKeyTime(t), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrBadDate, raw)
}

// DayKeyTime is DayKey for an already-parsed time.
func DayKeyTime(t time.Time) string {
	return t.In(time.Local).Format(dayLayout)
}
