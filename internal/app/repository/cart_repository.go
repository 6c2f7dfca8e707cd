package repository

import (
	"github.com/mrcow/mrcow-backend/internal/app/model"
	"github.com/mrcow/mrcow-backend/internal/storage"
	"github.com/mrcow/mrcow-backend/pkg/logger"
)

const (
	cartKey             = "mrCowCart"
	selectedLocationKey = "mrcow_selected_location"
)

// CartRepository persists cart state to the key-value store. Persistence is
// best-effort: write failures are logged and swallowed so the cart keeps
// working in memory for the rest of the session, and corrupted stored state
// reads as absent.
type CartRepository interface {
	Save(state model.CartState)
	Load() (model.CartState, bool)
	Clear()

	SaveSelectedLocation(location model.Location)
	SelectedLocation() (model.Location, bool)
}

type cartRepository struct {
	store storage.Store
}

func NewCartRepository(store storage.Store) CartRepository {
	return &cartRepository{store: store}
}

func (r *cartRepository) Save(state model.CartState) {
	if err := r.store.Set(cartKey, state); err != nil {
		logger.Warn("Failed to save cart to storage", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (r *cartRepository) Load() (model.CartState, bool) {
	var state model.CartState
	found, err := r.store.Get(cartKey, &state)
	if err != nil {
		logger.Warn("Failed to load cart from storage, starting empty", map[string]interface{}{
			"error": err.Error(),
		})
		return model.CartState{}, false
	}
	return state, found
}

func (r *cartRepository) Clear() {
	if err := r.store.Delete(cartKey); err != nil {
		logger.Warn("Failed to clear stored cart", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (r *cartRepository) SaveSelectedLocation(location model.Location) {
	if err := r.store.Set(selectedLocationKey, location); err != nil {
		logger.Warn("Failed to save selected location", map[string]interface{}{
			"location_id": location.ID,
			"error":       err.Error(),
		})
	}
}

func (r *cartRepository) SelectedLocation() (model.Location, bool) {
	var location model.Location
	found, err := r.store.Get(selectedLocationKey, &location)
	if err != nil {
		logger.Warn("Failed to load selected location", map[string]interface{}{
			"error": err.Error(),
		})
		return model.Location{}, false
	}
	return location, found
}
