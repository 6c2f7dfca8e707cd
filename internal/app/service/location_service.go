package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mrcow/mrcow-backend/internal/app/model"
	"github.com/mrcow/mrcow-backend/internal/app/repository"
	"github.com/mrcow/mrcow-backend/pkg/geo"
	"github.com/mrcow/mrcow-backend/pkg/logger"
	"github.com/mrcow/mrcow-backend/pkg/util"
)

var (
	ErrLocationNotFound = errors.New("location not found")
)

var dayNames = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// LocationService answers directory queries over the franchise locations:
// active listing, distance search, opening hours and text search.
type LocationService interface {
	GetAllLocations() []model.Location
	GetLocationByID(id string) (model.Location, error)
	FindNearestLocations(lat, lon float64, limit int) []model.LocationWithDistance
	NearestToCaller(ctx context.Context, limit int) ([]model.LocationWithDistance, error)
	IsLocationOpen(location model.Location, at time.Time) bool
	SearchLocations(query string) []model.Location
	GetLocationsByState(state string) []model.Location
	FormatHours(location model.Location) map[string]string
}

type locationService struct {
	locationRepo repository.LocationRepository
	coordinates  geo.Provider
}

func NewLocationService(locationRepo repository.LocationRepository, coordinates geo.Provider) LocationService {
	return &locationService{
		locationRepo: locationRepo,
		coordinates:  coordinates,
	}
}

// GetAllLocations returns the active locations only.
func (s *locationService) GetAllLocations() []model.Location {
	var active []model.Location
	for _, location := range s.locationRepo.FindAll() {
		if location.IsActive {
			active = append(active, location)
		}
	}
	return active
}

func (s *locationService) GetLocationByID(id string) (model.Location, error) {
	location, found := s.locationRepo.FindByID(id)
	if !found {
		return model.Location{}, ErrLocationNotFound
	}
	return location, nil
}

// FindNearestLocations computes the distance from the query point to every
// active location and returns the closest ones, nearest first. Ties keep
// the directory order.
func (s *locationService) FindNearestLocations(lat, lon float64, limit int) []model.LocationWithDistance {
	locations := s.GetAllLocations()
	result := make([]model.LocationWithDistance, 0, len(locations))
	for _, location := range locations {
		result = append(result, model.LocationWithDistance{
			Location: location,
			Distance: util.CalculateDistance(lat, lon, location.Coordinates.Latitude, location.Coordinates.Longitude),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Distance < result[j].Distance
	})

	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result
}

// NearestToCaller resolves the caller's coordinates through the coordinate
// provider and ranks locations from there. Provider failures surface to the
// caller untouched; the directory itself is unaffected.
func (s *locationService) NearestToCaller(ctx context.Context, limit int) ([]model.LocationWithDistance, error) {
	coords, err := s.coordinates.Current(ctx)
	if err != nil {
		logger.Warn("Failed to resolve caller coordinates", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return s.FindNearestLocations(coords.Latitude, coords.Longitude, limit), nil
}

// IsLocationOpen reports whether the location is open at the given moment.
// A missing or closed day entry counts as closed, and the interval is
// half-open: the closing minute itself is already closed.
func (s *locationService) IsLocationOpen(location model.Location, at time.Time) bool {
	hours, ok := location.Hours[dayNames[at.Weekday()]]
	if !ok || hours.Closed {
		return false
	}

	openMinute, err := parseMinuteOfDay(hours.Open)
	if err != nil {
		return false
	}
	closeMinute, err := parseMinuteOfDay(hours.Close)
	if err != nil {
		return false
	}

	minute := at.Hour()*60 + at.Minute()
	return minute >= openMinute && minute < closeMinute
}

// SearchLocations matches the query case-insensitively against name, city,
// state and feature tags of active locations.
func (s *locationService) SearchLocations(query string) []model.Location {
	term := strings.ToLower(query)
	var matches []model.Location
	for _, location := range s.GetAllLocations() {
		if strings.Contains(strings.ToLower(location.Name), term) ||
			strings.Contains(strings.ToLower(location.Address.City), term) ||
			strings.Contains(strings.ToLower(location.Address.State), term) ||
			matchesFeature(location.Features, term) {
			matches = append(matches, location)
		}
	}
	return matches
}

func (s *locationService) GetLocationsByState(state string) []model.Location {
	var matches []model.Location
	for _, location := range s.GetAllLocations() {
		if strings.EqualFold(location.Address.State, state) {
			matches = append(matches, location)
		}
	}
	return matches
}

// FormatHours renders each day's window as a 12-hour display string.
func (s *locationService) FormatHours(location model.Location) map[string]string {
	formatted := make(map[string]string, len(location.Hours))
	for day, hours := range location.Hours {
		if hours.Closed {
			formatted[day] = "Closed"
			continue
		}
		formatted[day] = fmt.Sprintf("%s - %s", formatClock(hours.Open), formatClock(hours.Close))
	}
	return formatted
}

func matchesFeature(features []string, term string) bool {
	for _, feature := range features {
		if strings.Contains(strings.ToLower(feature), term) {
			return true
		}
	}
	return false
}

// parseMinuteOfDay converts an "HH:MM" string to minutes since midnight.
func parseMinuteOfDay(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", clock)
	}
	return hours*60 + minutes, nil
}

// formatClock turns "14:30" into "2:30 PM".
func formatClock(clock string) string {
	minute, err := parseMinuteOfDay(clock)
	if err != nil {
		return clock
	}

	hours := minute / 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours
	switch {
	case hours > 12:
		display = hours - 12
	case hours == 0:
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute%60, period)
}
