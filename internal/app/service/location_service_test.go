package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mrcow/mrcow-backend/internal/app/model"
	"github.com/mrcow/mrcow-backend/internal/app/repository"
	"github.com/mrcow/mrcow-backend/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLocationRepo struct {
	locations []model.Location
}

func (r *stubLocationRepo) FindAll() []model.Location {
	return r.locations
}

func (r *stubLocationRepo) FindByID(id string) (model.Location, bool) {
	for _, l := range r.locations {
		if l.ID == id {
			return l, true
		}
	}
	return model.Location{}, false
}

type stubCoordinates struct {
	coords geo.Coordinates
	err    error
}

func (p *stubCoordinates) Current(context.Context) (geo.Coordinates, error) {
	return p.coords, p.err
}

func setupLocationServiceTest() LocationService {
	return NewLocationService(repository.NewLocationRepository(), &stubCoordinates{})
}

func TestLocationService_GetAllLocations_ActiveOnly(t *testing.T) {
	locationService := setupLocationServiceTest()

	for _, location := range locationService.GetAllLocations() {
		assert.True(t, location.IsActive, "inactive location %s leaked", location.ID)
	}
	// The shuttered Fullerton store stays out of the listing
	for _, location := range locationService.GetAllLocations() {
		assert.NotEqual(t, "fullerton-downtown", location.ID)
	}
}

func TestLocationService_GetLocationByID(t *testing.T) {
	locationService := setupLocationServiceTest()

	location, err := locationService.GetLocationByID("aiea-pearlridge")
	require.NoError(t, err)
	assert.Equal(t, "Aiea", location.Address.City)

	_, err = locationService.GetLocationByID("nowhere")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestLocationService_FindNearestLocations(t *testing.T) {
	locationService := setupLocationServiceTest()

	// Query point at the Aiea store itself
	nearest := locationService.FindNearestLocations(21.3891, -157.9298, 1)
	require.Len(t, nearest, 1)
	assert.Equal(t, "aiea-pearlridge", nearest[0].ID)
	assert.InDelta(t, 0, nearest[0].Distance, 1e-9)
}

func TestLocationService_FindNearestLocations_SortedAscending(t *testing.T) {
	locationService := setupLocationServiceTest()

	nearest := locationService.FindNearestLocations(21.3069, -157.8583, 0)
	require.GreaterOrEqual(t, len(nearest), 2)
	for i := 1; i < len(nearest); i++ {
		assert.LessOrEqual(t, nearest[i-1].Distance, nearest[i].Distance)
	}
}

func TestLocationService_FindNearestLocations_StableOnTies(t *testing.T) {
	coords := model.Coordinates{Latitude: 21.30, Longitude: -157.85}
	repo := &stubLocationRepo{locations: []model.Location{
		{ID: "first", Coordinates: coords, IsActive: true},
		{ID: "second", Coordinates: coords, IsActive: true},
	}}
	locationService := NewLocationService(repo, &stubCoordinates{})

	nearest := locationService.FindNearestLocations(21.35, -157.90, 2)
	require.Len(t, nearest, 2)
	assert.Equal(t, "first", nearest[0].ID)
	assert.Equal(t, "second", nearest[1].ID)
}

func TestLocationService_NearestToCaller(t *testing.T) {
	provider := &stubCoordinates{coords: geo.Coordinates{Latitude: 21.3891, Longitude: -157.9298}}
	locationService := NewLocationService(repository.NewLocationRepository(), provider)

	nearest, err := locationService.NearestToCaller(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, nearest, 1)
	assert.Equal(t, "aiea-pearlridge", nearest[0].ID)
}

func TestLocationService_NearestToCaller_ProviderFailure(t *testing.T) {
	provider := &stubCoordinates{err: geo.ErrTimeout}
	locationService := NewLocationService(repository.NewLocationRepository(), provider)

	_, err := locationService.NearestToCaller(context.Background(), 1)
	assert.True(t, errors.Is(err, geo.ErrTimeout))
}

func openLocation() model.Location {
	return model.Location{
		Hours: map[string]model.DayHours{
			"monday": {Open: "10:00", Close: "21:00"},
			"sunday": {Closed: true},
		},
	}
}

// 2026-08-31 is a Monday, 2026-08-30 a Sunday.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2026, 8, 31, hour, minute, 0, 0, time.UTC)
}

func TestLocationService_IsLocationOpen(t *testing.T) {
	locationService := setupLocationServiceTest()
	location := openLocation()

	assert.True(t, locationService.IsLocationOpen(location, mondayAt(10, 0)))
	assert.True(t, locationService.IsLocationOpen(location, mondayAt(14, 30)))
	assert.False(t, locationService.IsLocationOpen(location, mondayAt(9, 59)))
}

func TestLocationService_IsLocationOpen_ClosingMinute(t *testing.T) {
	locationService := setupLocationServiceTest()
	location := openLocation()

	// One minute before close is open; the closing minute itself is not
	assert.True(t, locationService.IsLocationOpen(location, mondayAt(20, 59)))
	assert.False(t, locationService.IsLocationOpen(location, mondayAt(21, 0)))
}

func TestLocationService_IsLocationOpen_ClosedDay(t *testing.T) {
	locationService := setupLocationServiceTest()
	location := openLocation()

	sunday := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	assert.False(t, locationService.IsLocationOpen(location, sunday))

	tuesday := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) // no entry at all
	assert.False(t, locationService.IsLocationOpen(location, tuesday))
}

func TestLocationService_SearchLocations(t *testing.T) {
	locationService := setupLocationServiceTest()

	byCity := locationService.SearchLocations("aiea")
	require.Len(t, byCity, 1)
	assert.Equal(t, "aiea-pearlridge", byCity[0].ID)

	byFeature := locationService.SearchLocations("MALL")
	assert.NotEmpty(t, byFeature)

	assert.Empty(t, locationService.SearchLocations("anchorage"))
}

func TestLocationService_GetLocationsByState(t *testing.T) {
	locationService := setupLocationServiceTest()

	hawaii := locationService.GetLocationsByState("hi")
	assert.Len(t, hawaii, 2)

	// Fullerton is inactive, so only Irvine remains for CA
	california := locationService.GetLocationsByState("CA")
	require.Len(t, california, 1)
	assert.Equal(t, "irvine-diamond-jamboree", california[0].ID)
}

func TestLocationService_FormatHours(t *testing.T) {
	locationService := setupLocationServiceTest()

	formatted := locationService.FormatHours(model.Location{
		Hours: map[string]model.DayHours{
			"monday": {Open: "10:00", Close: "21:00"},
			"sunday": {Closed: true},
		},
	})

	assert.Equal(t, "10:00 AM - 9:00 PM", formatted["monday"])
	assert.Equal(t, "Closed", formatted["sunday"])
}
