package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mrcow/mrcow-backend/internal/app/model"
	"github.com/mrcow/mrcow-backend/internal/app/repository"
	"github.com/mrcow/mrcow-backend/internal/notifier"
	"github.com/mrcow/mrcow-backend/pkg/logger"
	"github.com/mrcow/mrcow-backend/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidTip       = errors.New("tip amount cannot be negative")
)

// CartService owns the cart: one logical cart per running process,
// constructed once at the composition root and shared by reference. Every
// mutation recomputes the derived money fields, persists the state
// best-effort and broadcasts a cart-updated event. All operations run to
// completion before returning.
type CartService interface {
	AddMenuItem(menuItemID string, quantity int, customizations map[string]string) (model.LineItem, error)
	AddLineItem(line model.LineItem) (model.LineItem, error)
	UpdateQuantity(lineItemID string, quantity int) error
	RemoveItem(lineItemID string)
	SetTip(amount decimal.Decimal, isPercentage bool) error
	SetLocation(locationID string)
	Clear()

	Items() []model.LineItem
	Summary() model.CartSummary
	Total() decimal.Decimal
	ItemCount() int
	IsEmpty() bool
	Location() string
	LastUpdated() time.Time

	Subscribe(h notifier.Handler) (unsubscribe func())
}

type cartService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuRepository
	pricer   *Pricer
	notifier *notifier.Notifier

	mu    sync.Mutex
	items []model.LineItem
	cart  model.Cart
}

// NewCartService builds the cart store, loading any previously persisted
// state and falling back to an empty cart when nothing usable is stored.
func NewCartService(
	cartRepo repository.CartRepository,
	menuRepo repository.MenuRepository,
	pricer *Pricer,
	events *notifier.Notifier,
) CartService {
	s := &cartService{
		cartRepo: cartRepo,
		menuRepo: menuRepo,
		pricer:   pricer,
		notifier: events,
	}

	now := time.Now()
	s.cart = model.Cart{CreatedAt: now, UpdatedAt: now}

	if state, found := cartRepo.Load(); found {
		s.items = state.Items
		s.cart = state.Cart
		s.recomputeLocked()
		logger.Info("Cart restored from storage", map[string]interface{}{
			"items":       len(s.items),
			"location_id": s.cart.LocationID,
		})
	}

	return s
}

func (s *cartService) AddMenuItem(menuItemID string, quantity int, customizations map[string]string) (model.LineItem, error) {
	if quantity <= 0 {
		return model.LineItem{}, ErrInvalidQuantity
	}

	item, found := s.menuRepo.FindByID(menuItemID)
	if !found {
		logger.Warn("Cannot add to cart: menu item not found", map[string]interface{}{
			"menu_item_id": menuItemID,
		})
		return model.LineItem{}, ErrMenuItemNotFound
	}

	line := model.LineItem{
		ID:             newLineItemID(item.ID),
		Name:           item.Name,
		KoreanName:     item.KoreanName,
		Price:          s.pricer.PriceOf(item, customizations),
		Category:       string(item.Category),
		Quantity:       quantity,
		Customizations: customizations,
		Image:          item.ImageURL,
	}

	return s.insert(line.Copy())
}

func (s *cartService) AddLineItem(line model.LineItem) (model.LineItem, error) {
	if line.Quantity <= 0 {
		return model.LineItem{}, ErrInvalidQuantity
	}
	if line.ID == "" {
		line.ID = newLineItemID(line.Name)
	}
	return s.insert(line.Copy())
}

// insert applies the merge rule: a line with the same name and an identical
// customization selection has its quantity incremented; anything else is
// appended as a new line.
func (s *cartService) insert(line model.LineItem) (model.LineItem, error) {
	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].SameSelection(line) {
			s.items[i].Quantity += line.Quantity
			line = s.items[i].Copy()
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, line)
	}
	event := s.commitLocked()
	s.mu.Unlock()

	logger.Info("Cart item added", map[string]interface{}{
		"line_item_id": line.ID,
		"name":         line.Name,
		"quantity":     line.Quantity,
		"merged":       merged,
	})
	s.notifier.Publish(event)
	return line.Copy(), nil
}

func (s *cartService) UpdateQuantity(lineItemID string, quantity int) error {
	s.mu.Lock()
	index := s.indexOfLocked(lineItemID)
	switch {
	case index < 0:
		// Unknown ids are a benign no-op so the operation stays
		// idempotent-safe; the commit below still runs.
		logger.Warn("Quantity update for unknown cart item", map[string]interface{}{
			"line_item_id": lineItemID,
		})
	case quantity <= 0:
		s.items = append(s.items[:index], s.items[index+1:]...)
	default:
		s.items[index].Quantity = quantity
	}
	event := s.commitLocked()
	s.mu.Unlock()

	logger.Info("Cart quantity updated", map[string]interface{}{
		"line_item_id": lineItemID,
		"quantity":     quantity,
	})
	s.notifier.Publish(event)
	return nil
}

func (s *cartService) RemoveItem(lineItemID string) {
	s.mu.Lock()
	if index := s.indexOfLocked(lineItemID); index >= 0 {
		s.items = append(s.items[:index], s.items[index+1:]...)
	}
	event := s.commitLocked()
	s.mu.Unlock()

	logger.Info("Cart item removed", map[string]interface{}{
		"line_item_id": lineItemID,
	})
	s.notifier.Publish(event)
}

// SetTip sets the tip as an absolute amount, or as a percentage of the
// current subtotal resolved immediately. A percentage tip does not rescale
// when the subtotal later changes.
func (s *cartService) SetTip(amount decimal.Decimal, isPercentage bool) error {
	if amount.IsNegative() {
		return ErrInvalidTip
	}

	s.mu.Lock()
	if isPercentage {
		s.cart.Tip = s.subtotalLocked().Mul(amount).Div(decimal.NewFromInt(100))
	} else {
		s.cart.Tip = amount
	}
	event := s.commitLocked()
	s.mu.Unlock()

	logger.Info("Cart tip set", map[string]interface{}{
		"amount":        amount.String(),
		"is_percentage": isPercentage,
	})
	s.notifier.Publish(event)
	return nil
}

// SetLocation associates the cart with a location id. The id is not
// validated against the location directory; that is the caller's concern.
func (s *cartService) SetLocation(locationID string) {
	s.mu.Lock()
	s.cart.LocationID = locationID
	event := s.commitLocked()
	s.mu.Unlock()

	logger.Info("Cart location set", map[string]interface{}{
		"location_id": locationID,
	})
	s.notifier.Publish(event)
}

// Clear empties the cart but preserves the selected location.
func (s *cartService) Clear() {
	s.mu.Lock()
	now := time.Now()
	s.items = nil
	s.cart = model.Cart{
		LocationID: s.cart.LocationID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	event := s.commitLocked()
	s.mu.Unlock()

	logger.Info("Cart cleared", nil)
	s.notifier.Publish(event)
}

func (s *cartService) Items() []model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItemsLocked()
}

func (s *cartService) Summary() model.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeLocked()
	return s.summaryLocked()
}

func (s *cartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *cartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCountLocked()
}

func (s *cartService) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

func (s *cartService) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.LocationID
}

func (s *cartService) LastUpdated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.UpdatedAt
}

func (s *cartService) Subscribe(h notifier.Handler) (unsubscribe func()) {
	return s.notifier.Subscribe(h)
}

// commitLocked recomputes derived fields, persists the state and builds the
// broadcast event. The caller publishes the event after releasing the lock
// so subscribers can safely re-read the store.
func (s *cartService) commitLocked() notifier.Event {
	s.recomputeLocked()
	s.cart.UpdatedAt = time.Now()

	s.cartRepo.Save(model.CartState{
		Items: s.copyItemsLocked(),
		Cart:  s.cart,
	})

	summary := s.summaryLocked()
	return notifier.Event{
		Type:    notifier.EventCartUpdated,
		Items:   s.copyItemsLocked(),
		Total:   s.subtotalLocked(),
		Count:   s.itemCountLocked(),
		Summary: summary,
		Cart: notifier.CartTotals{
			Subtotal: summary.Subtotal,
			Tax:      summary.Tax,
			Tip:      summary.Tip,
			Total:    summary.Total,
		},
	}
}

// recomputeLocked rebuilds subtotal/tax/total from the current line items so
// the derived fields can never drift from them.
func (s *cartService) recomputeLocked() {
	totals, err := s.pricer.ComputeTotals(s.items, s.cart.Tip)
	if err != nil {
		// Line items are validated on the way in, so this indicates a
		// corrupted stored state; drop the offending lines.
		logger.Error("Cart contains invalid line items, resetting", err, nil)
		s.items = nil
		totals, _ = s.pricer.ComputeTotals(nil, s.cart.Tip)
	}
	s.cart.Subtotal = totals.Subtotal
	s.cart.Tax = totals.Tax
	s.cart.Total = totals.Total
}

func (s *cartService) summaryLocked() model.CartSummary {
	total := money.Round(s.cart.Total)
	return model.CartSummary{
		ItemCount:      s.itemCountLocked(),
		Subtotal:       money.Round(s.cart.Subtotal),
		Tax:            money.Round(s.cart.Tax),
		Tip:            money.Round(s.cart.Tip),
		Total:          total,
		FormattedTotal: money.FormatUSD(total),
		IsEmpty:        len(s.items) == 0,
	}
}

func (s *cartService) subtotalLocked() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range s.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	return subtotal
}

func (s *cartService) itemCountLocked() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *cartService) indexOfLocked(lineItemID string) int {
	for i := range s.items {
		if s.items[i].ID == lineItemID {
			return i
		}
	}
	return -1
}

func (s *cartService) copyItemsLocked() []model.LineItem {
	items := make([]model.LineItem, len(s.items))
	for i, item := range s.items {
		items[i] = item.Copy()
	}
	return items
}

// newLineItemID generates a unique line item identity from the source item
// id, the current time and a random suffix.
func newLineItemID(itemID string) string {
	return fmt.Sprintf("%s-%d-%s", itemID, time.Now().UnixMilli(), uuid.NewString()[:8])
}
