package comanda

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ray-remotestate/comandas/models"
)

// SkippedPedido records a line item that was excluded from a total because
// its quantity or unit price was malformed or negative.
type SkippedPedido struct {
	PedidoID  string
	Quantity  string
	UnitPrice string
	Reason    string
}

// Valuation is the outcome of totalling one comanda. Skipped is non-empty
// when items were excluded, so a zero Total from an empty comanda can be
// told apart from a zero produced by discarding malformed lines.
type Valuation struct {
	Total   decimal.Decimal
	Skipped []SkippedPedido
}

// String renders the total with exactly two fractional digits.
func (v Valuation) String() string {
	return v.Total.StringFixed(2)
}

// Calculate totals a comanda by summing quantity × unit price over its line
// items. The backend's precomputed subtotal field is ignored. Items whose
// quantity or price fails to parse, or is negative, contribute nothing and
// are reported in Skipped; they never abort the whole comanda. The sum is
// rounded to two places once at the end, half away from zero.
func Calculate(c models.Comanda) Valuation {
	total := decimal.Zero
	var skipped []SkippedPedido

	for _, p := range c.Items {
		qty, err := decimal.NewFromString(strings.TrimSpace(p.Quantity))
		if err != nil {
			skipped = append(skipped, skip(p, "quantidade is not a number"))
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(p.UnitPrice))
		if err != nil {
			skipped = append(skipped, skip(p, "precoUnitario is not a number"))
			continue
		}
		if qty.IsNegative() {
			skipped = append(skipped, skip(p, "quantidade is negative"))
			continue
		}
		if price.IsNegative() {
			skipped = append(skipped, skip(p, "precoUnitario is negative"))
			continue
		}
		total = total.Add(qty.Mul(price))
	}

	return Valuation{Total: total.Round(2), Skipped: skipped}
}

func skip(p models.Pedido, reason string) SkippedPedido {
	return SkippedPedido{
		PedidoID:  p.ID,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		Reason:    reason,
	}
}
