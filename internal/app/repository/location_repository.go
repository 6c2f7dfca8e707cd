package repository

import (
	"github.com/mrcow/mrcow-backend/internal/app/model"
)

// LocationRepository serves the franchise location directory. The directory
// is compiled-in reference data and never mutated at runtime.
type LocationRepository interface {
	FindAll() []model.Location
	FindByID(id string) (model.Location, bool)
}

type locationRepository struct {
	locations []model.Location
}

func NewLocationRepository() LocationRepository {
	return &locationRepository{locations: franchiseLocations}
}

func (r *locationRepository) FindAll() []model.Location {
	result := make([]model.Location, len(r.locations))
	copy(result, r.locations)
	return result
}

func (r *locationRepository) FindByID(id string) (model.Location, bool) {
	for _, location := range r.locations {
		if location.ID == id {
			return location, true
		}
	}
	return model.Location{}, false
}
