package client

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/ray-remotestate/comandas/comanda"
	"github.com/ray-remotestate/comandas/models"
)

// Fetcher is the slice of Client a Listing needs.
type Fetcher interface {
	ListComandas(ctx context.Context) ([]models.Comanda, error)
}

// Listing is what a comanda list screen renders from: the fetched collection,
// a loading flag, and the current filter. Refreshes carry a monotonic
// generation number; a response that is no longer the newest is dropped, so
// overlapping refreshes can never publish stale data.
type Listing struct {
	fetcher Fetcher
	gen     *atomic.Int64

	mu       sync.Mutex
	comandas []models.Comanda
	loading  bool
	category comanda.Category
	day      *time.Time
}

func NewListing(f Fetcher) *Listing {
	return &Listing{
		fetcher:  f,
		gen:      atomic.NewInt64(0),
		category: comanda.CategoryAll,
	}
}

// Refresh fetches the comanda collection. On failure the previously displayed
// data stays put and the error is logged as well as returned. A refresh that
// has been superseded by a newer one discards its response silently.
func (l *Listing) Refresh(ctx context.Context) error {
	gen := l.gen.Inc()

	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	comandas, err := l.fetcher.ListComandas(ctx)

	// the staleness check must share the critical section with the publish,
	// or a newer refresh could land in between and be overwritten
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen.Load() != gen {
		// a newer refresh is in flight or already landed
		return nil
	}
	l.loading = false

	if err != nil {
		logrus.WithError(err).Error("failed to refresh comandas, keeping previous data")
		return err
	}

	l.comandas = comandas
	return nil
}

// SetCategory changes the status filter applied by Comandas.
func (l *Listing) SetCategory(cat comanda.Category) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.category = cat
}

// SetDay restricts Comandas to a single local calendar day; nil clears the
// restriction.
func (l *Listing) SetDay(day *time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.day = day
}

// Comandas returns the fetched collection narrowed by the current filter,
// in backend order.
func (l *Listing) Comandas() []models.Comanda {
	l.mu.Lock()
	defer l.mu.Unlock()
	return comanda.Filter(l.comandas, l.category, l.day)
}

// All returns the unfiltered collection.
func (l *Listing) All() []models.Comanda {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.comandas
}

func (l *Listing) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// TotalFor computes the display total of one comanda, logging any line items
// that had to be excluded as malformed.
func (l *Listing) TotalFor(c models.Comanda) decimal.Decimal {
	v := comanda.Calculate(c)
	for _, s := range v.Skipped {
		logrus.Warnf("pedido %s of comanda %d excluded from total: %s (quantidade=%q, precoUnitario=%q)",
			s.PedidoID, c.ID, s.Reason, s.Quantity, s.UnitPrice)
	}
	return v.Total
}
