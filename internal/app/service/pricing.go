package service

import (
	"errors"
	"strings"

	"github.com/mrcow/mrcow-backend/internal/app/model"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// Drink size tiers. A size selection replaces the base price outright; it
// never adds to it.
var (
	drinkPriceRegular = decimal.NewFromFloat(5.00) // 16oz
	drinkPriceLarge   = decimal.NewFromFloat(6.00) // 24oz
)

// Totals holds the money derived from a set of line items. Values are
// unrounded; rounding happens at the presentation boundary.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Pricer computes item prices and order totals.
type Pricer struct {
	taxRate decimal.Decimal
}

func NewPricer(taxRate float64) *Pricer {
	return &Pricer{taxRate: decimal.NewFromFloat(taxRate)}
}

// PriceOf returns the unit price of a menu item under the given
// customization selections. Exactly one override source wins: a drink size
// selection maps to a fixed tier price replacing the catalog price. Unknown
// customization keys are ignored.
func (p *Pricer) PriceOf(item model.MenuItem, customizations map[string]string) decimal.Decimal {
	if item.Category == model.CategoryDrinks {
		if size, ok := customizations["Size"]; ok {
			if strings.Contains(size, "24oz") {
				return drinkPriceLarge
			}
			return drinkPriceRegular
		}
	}
	return item.Price
}

// ComputeTotals derives subtotal, tax and total from the line items and the
// tip amount. It fails if any line carries a non-positive quantity.
func (p *Pricer) ComputeTotals(items []model.LineItem, tip decimal.Decimal) (Totals, error) {
	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return Totals{}, ErrInvalidQuantity
		}
		subtotal = subtotal.Add(item.Subtotal())
	}

	tax := subtotal.Mul(p.taxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax).Add(tip),
	}, nil
}
