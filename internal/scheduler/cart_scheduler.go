package scheduler

import (
	"time"

	"github.com/mrcow/mrcow-backend/internal/app/service"
	"github.com/mrcow/mrcow-backend/internal/storage"
	"github.com/mrcow/mrcow-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CartScheduler runs the hourly housekeeping: abandoned carts are cleared
// after sitting idle past their TTL, and expired cache entries are swept.
type CartScheduler struct {
	cron        *cron.Cron
	cartService service.CartService
	store       storage.Store
	idleTTL     time.Duration
}

func NewCartScheduler(cartService service.CartService, store storage.Store, idleTTL time.Duration) *CartScheduler {
	return &CartScheduler{
		cron:        cron.New(),
		cartService: cartService,
		store:       store,
		idleTTL:     idleTTL,
	}
}

func (s *CartScheduler) Start() error {
	// Top of every hour
	_, err := s.cron.AddFunc("0 * * * *", func() {
		s.clearStaleCart()
		s.sweepCache()
	})
	if err != nil {
		logger.Error("Failed to add cart housekeeping cron job", err)
		return err
	}

	s.cron.Start()
	logger.Info("Cart scheduler started (hourly housekeeping)", map[string]interface{}{
		"idle_ttl": s.idleTTL.String(),
	})
	return nil
}

func (s *CartScheduler) Stop() {
	logger.Info("Stopping cart scheduler...", nil)
	s.cron.Stop()
	logger.Info("Cart scheduler stopped", nil)
}

// clearStaleCart empties the cart once it has been idle longer than the
// TTL. The selected location survives the clear.
func (s *CartScheduler) clearStaleCart() {
	if s.cartService.IsEmpty() {
		return
	}

	idle := time.Since(s.cartService.LastUpdated())
	if idle < s.idleTTL {
		return
	}

	logger.Info("Clearing stale cart", map[string]interface{}{
		"idle":     idle.String(),
		"idle_ttl": s.idleTTL.String(),
		"items":    s.cartService.ItemCount(),
	})
	s.cartService.Clear()
}

func (s *CartScheduler) sweepCache() {
	removed, err := storage.SweepExpiredCache(s.store)
	if err != nil {
		logger.Error("Cache sweep failed", err)
		return
	}
	if removed > 0 {
		logger.Info("Swept expired cache entries", map[string]interface{}{
			"removed": removed,
		})
	}
}
