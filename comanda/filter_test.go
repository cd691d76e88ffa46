package comanda

import (
	"testing"
	"time"

	"github.com/ray-remotestate/comandas/models"
)

func sample() []models.Comanda {
	return []models.Comanda{
		{ID: 1, Status: "ABERTA", Date: "2024-03-05T10:00:00"},
		{ID: 2, Status: "FECHADA", Date: "2024-03-05T22:30:00"},
		{ID: 3, Status: "aberta ", Date: "2024-03-06T01:00:00"},
		{ID: 4, Status: "PENDENTE", Date: "2024-03-06T12:00:00"},
		{ID: 5, Status: "CANCELADA", Date: ""},
	}
}

func ids(cs []models.Comanda) []int {
	out := make([]int, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterAllNoDatePassesEverythingInOrder(t *testing.T) {
	in := sample()
	out := Filter(in, CategoryAll, nil)
	if !equalIDs(ids(out), []int{1, 2, 3, 4, 5}) {
		t.Errorf("expected all comandas in input order, got %v", ids(out))
	}
}

func TestFilterByCategoryNormalizesStatus(t *testing.T) {
	// "aberta " must match CategoryOpen despite case and trailing space
	out := Filter(sample(), CategoryOpen, nil)
	if !equalIDs(ids(out), []int{1, 3}) {
		t.Errorf("expected [1 3], got %v", ids(out))
	}
}

func TestFilterByCategory(t *testing.T) {
	tests := []struct {
		cat  Category
		want []int
	}{
		{CategoryPending, []int{4}},
		{CategoryClosed, []int{2}},
		{CategoryCancelled, []int{5}},
	}
	for _, tt := range tests {
		out := Filter(sample(), tt.cat, nil)
		if !equalIDs(ids(out), tt.want) {
			t.Errorf("category %s: expected %v, got %v", tt.cat, tt.want, ids(out))
		}
	}
}

func TestFilterBySameLocalDay(t *testing.T) {
	day := time.Date(2024, 3, 5, 18, 45, 0, 0, time.Local)
	out := Filter(sample(), CategoryAll, &day)
	// 1 and 2 fall on 2024-03-05; 3 is the small hours of the next day
	if !equalIDs(ids(out), []int{1, 2}) {
		t.Errorf("expected [1 2], got %v", ids(out))
	}
}

func TestFilterMissingDateFailsDayCondition(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	in := []models.Comanda{
		{ID: 1, Status: "ABERTA", Date: "2024-03-05T09:00:00"},
		{ID: 2, Status: "ABERTA", Date: ""},
		{ID: 3, Status: "ABERTA", Date: "not-a-date"},
	}
	out := Filter(in, CategoryAll, &day)
	if !equalIDs(ids(out), []int{1}) {
		t.Errorf("expected only the parseable same-day comanda, got %v", ids(out))
	}
}

func TestFilterStatusAndDateAreANDed(t *testing.T) {
	day := time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local)
	out := Filter(sample(), CategoryOpen, &day)
	if !equalIDs(ids(out), []int{3}) {
		t.Errorf("expected [3], got %v", ids(out))
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	once := Filter(sample(), CategoryOpen, &day)
	twice := Filter(once, CategoryOpen, &day)
	if !equalIDs(ids(once), ids(twice)) {
		t.Errorf("filtering twice changed the result: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := sample()
	Filter(in, CategoryClosed, nil)
	if !equalIDs(ids(in), []int{1, 2, 3, 4, 5}) {
		t.Errorf("input slice was mutated: %v", ids(in))
	}
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	day := time.Date(1999, 1, 1, 0, 0, 0, 0, time.Local)
	out := Filter(sample(), CategoryAll, &day)
	if len(out) != 0 {
		t.Errorf("expected empty result, got %v", ids(out))
	}
}
