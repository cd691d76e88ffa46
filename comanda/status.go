// Package comanda holds the filtering and valuation pipeline for comandas:
// status normalization, calendar-day keys, line-item totals and the combined
// status+date filter. Everything here is pure; callers decide what to log.
package comanda

import (
	"strings"

	"github.com/ray-remotestate/comandas/models"
)

// Category is a user-facing filter grouping. Each category except CategoryAll
// maps to exactly one backend status value.
type Category string

const (
	CategoryAll       Category = "Todas"
	CategoryOpen      Category = "Abertas"
	CategoryPending   Category = "Pendentes"
	CategoryClosed    Category = "Fechadas"
	CategoryCancelled Category = "Canceladas"
)

// categoryStatuses maps a category to the backend statuses it admits.
// A nil slice means no status restriction.
var categoryStatuses = map[Category][]models.Status{
	CategoryAll:       nil,
	CategoryOpen:      {models.StatusOpen},
	CategoryPending:   {models.StatusPending},
	CategoryClosed:    {models.StatusClosed},
	CategoryCancelled: {models.StatusCancelled},
}

// Normalize prepares a status string for comparison: surrounding whitespace
// stripped, upper-cased. Empty input normalizes to "".
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// allowedStatuses returns the set of normalized statuses a category admits,
// or nil when every status passes.
func allowedStatuses(cat Category) map[string]bool {
	statuses := categoryStatuses[cat]
	if statuses == nil {
		return nil
	}
	allowed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		allowed[Normalize(string(s))] = true
	}
	return allowed
}
