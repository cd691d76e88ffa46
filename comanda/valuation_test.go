package comanda

import (
	"testing"

	"github.com/ray-remotestate/comandas/models"
)

func pedido(id, qty, price string) models.Pedido {
	return models.Pedido{ID: id, Quantity: qty, UnitPrice: price}
}

func TestCalculateEmptyComanda(t *testing.T) {
	v := Calculate(models.Comanda{ID: 1})
	if got := v.String(); got != "0.00" {
		t.Errorf("expected total '0.00', got '%s'", got)
	}
	if len(v.Skipped) != 0 {
		t.Errorf("empty comanda should skip nothing, got %d skipped", len(v.Skipped))
	}
}

func TestCalculateSingleItem(t *testing.T) {
	c := models.Comanda{Items: []models.Pedido{pedido("p1", "2", "10.5")}}
	if got := Calculate(c).String(); got != "21.00" {
		t.Errorf("expected '21.00', got '%s'", got)
	}
}

func TestCalculateSkipsMalformedItems(t *testing.T) {
	tests := []struct {
		name   string
		items  []models.Pedido
		total  string
		reason string
	}{
		{
			name:   "negative quantity",
			items:  []models.Pedido{pedido("a", "2", "10"), pedido("b", "-1", "5")},
			total:  "20.00",
			reason: "quantidade is negative",
		},
		{
			name:   "unparsable price",
			items:  []models.Pedido{pedido("a", "2", "10"), pedido("b", "1", "abc")},
			total:  "20.00",
			reason: "precoUnitario is not a number",
		},
		{
			name:   "unparsable quantity",
			items:  []models.Pedido{pedido("a", "", "3")},
			total:  "0.00",
			reason: "quantidade is not a number",
		},
		{
			name:   "negative price",
			items:  []models.Pedido{pedido("a", "3", "-0.01")},
			total:  "0.00",
			reason: "precoUnitario is negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Calculate(models.Comanda{Items: tt.items})
			if got := v.String(); got != tt.total {
				t.Errorf("expected total '%s', got '%s'", tt.total, got)
			}
			if len(v.Skipped) != 1 {
				t.Fatalf("expected 1 skipped item, got %d", len(v.Skipped))
			}
			if v.Skipped[0].Reason != tt.reason {
				t.Errorf("expected reason '%s', got '%s'", tt.reason, v.Skipped[0].Reason)
			}
		})
	}
}

func TestCalculateSkippedCarriesOffendingValues(t *testing.T) {
	c := models.Comanda{Items: []models.Pedido{pedido("bad-id", "x", "5")}}
	v := Calculate(c)
	if len(v.Skipped) != 1 {
		t.Fatalf("expected 1 skipped item, got %d", len(v.Skipped))
	}
	s := v.Skipped[0]
	if s.PedidoID != "bad-id" || s.Quantity != "x" || s.UnitPrice != "5" {
		t.Errorf("skipped record does not identify the offending item: %+v", s)
	}
}

// A float accumulator would sum 0.1*0.1 three times to 0.030000000000000006;
// the decimal pipeline must land on 0.03 exactly.
func TestCalculateNoFloatDrift(t *testing.T) {
	c := models.Comanda{Items: []models.Pedido{
		pedido("a", "0.1", "0.1"),
		pedido("b", "0.1", "0.1"),
		pedido("c", "0.1", "0.1"),
	}}
	if got := Calculate(c).String(); got != "0.03" {
		t.Errorf("expected '0.03', got '%s'", got)
	}
}

func TestCalculateRoundsOnceAtTheEnd(t *testing.T) {
	// each line is 0.005; per-item rounding would give 0.01+0.01 = 0.02,
	// a single final rounding gives 0.01
	c := models.Comanda{Items: []models.Pedido{
		pedido("a", "1", "0.005"),
		pedido("b", "1", "0.005"),
	}}
	if got := Calculate(c).String(); got != "0.01" {
		t.Errorf("expected '0.01', got '%s'", got)
	}
}

func TestCalculateIgnoresBackendSubtotal(t *testing.T) {
	c := models.Comanda{Items: []models.Pedido{
		{ID: "a", Quantity: "2", UnitPrice: "3", Subtotal: "999.99"},
	}}
	if got := Calculate(c).String(); got != "6.00" {
		t.Errorf("expected '6.00', got '%s'", got)
	}
}
