package comanda

import (
	"time"

	"github.com/ray-remotestate/comandas/models"
)

// Filter selects the comandas that match both the category's status set and,
// when day is non-nil, the same local calendar day as day. Input order is
// preserved and the input slice is never mutated. A comanda whose date does
// not parse fails the day condition. Never errors; an empty result is a
// valid outcome.
func Filter(comandas []models.Comanda, cat Category, day *time.Time) []models.Comanda {
	allowed := allowedStatuses(cat)

	dayKey := ""
	if day != nil {
		dayKey = DayKeyTime(*day)
	}

	out := make([]models.Comanda, 0, len(comandas))
	for _, c := range comandas {
		if allowed != nil && !allowed[Normalize(string(c.Status))] {
			continue
		}
		if dayKey != "" {
			key, err := DayKey(c.Date)
			if err != nil || key != dayKey {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
