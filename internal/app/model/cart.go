package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one entry in the cart: a chosen menu item with quantity and
// customization selections. The unit price is already resolved against the
// selections, so the cart never has to consult the catalog again.
type LineItem struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	KoreanName     string            `json:"korean_name,omitempty"`
	Price          decimal.Decimal   `json:"price"`
	Category       string            `json:"category"`
	Quantity       int               `json:"quantity"`
	Customizations map[string]string `json:"customizations,omitempty"`
	Image          string            `json:"image,omitempty"`
}

// Subtotal returns unit price times quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Copy returns a deep copy so callers cannot mutate store-owned state.
func (li LineItem) Copy() LineItem {
	dup := li
	if li.Customizations != nil {
		dup.Customizations = make(map[string]string, len(li.Customizations))
		for k, v := range li.Customizations {
			dup.Customizations[k] = v
		}
	}
	return dup
}

// SameSelection reports whether another line represents the same menu item
// with a structurally identical customization selection. Matching lines are
// merged instead of appended.
func (li LineItem) SameSelection(other LineItem) bool {
	if li.Name != other.Name || len(li.Customizations) != len(other.Customizations) {
		return false
	}
	for k, v := range li.Customizations {
		if other.Customizations[k] != v {
			return false
		}
	}
	return true
}

// Cart is the mutable order state: line items plus money fields derived from
// them. Subtotal, tax and total are recomputed from the items before every
// read and never drift from them.
type Cart struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Tip        decimal.Decimal `json:"tip"`
	Total      decimal.Decimal `json:"total"`
	LocationID string          `json:"location_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CartState is the persisted shape: the line items and the cart record,
// serialized together under a single storage key.
type CartState struct {
	Items []LineItem `json:"items"`
	Cart  Cart       `json:"cart"`
}

// CartSummary is a read-only projection of the cart with amounts rounded to
// currency precision. It is recomputed on every read and never persisted.
type CartSummary struct {
	ItemCount      int             `json:"item_count"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Tax            decimal.Decimal `json:"tax"`
	Tip            decimal.Decimal `json:"tip"`
	Total          decimal.Decimal `json:"total"`
	FormattedTotal string          `json:"formatted_total"`
	IsEmpty        bool            `json:"is_empty"`
}
