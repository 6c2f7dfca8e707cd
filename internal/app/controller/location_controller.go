package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrcow/mrcow-backend/internal/app/service"
	apperrors "github.com/mrcow/mrcow-backend/internal/errors"
	"github.com/mrcow/mrcow-backend/internal/middleware"
)

type LocationController struct {
	locationService service.LocationService
}

func NewLocationController(locationService service.LocationService) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

// GetAllLocations lists active locations, optionally filtered by state
// GET /api/v1/locations?state=HI
func (ctrl *LocationController) GetAllLocations(c *gin.Context) {
	if state := c.Query("state"); state != "" {
		locations := ctrl.locationService.GetLocationsByState(state)
		c.JSON(http.StatusOK, gin.H{
			"locations": locations,
			"count":     len(locations),
			"state":     state,
		})
		return
	}

	locations := ctrl.locationService.GetAllLocations()
	c.JSON(http.StatusOK, gin.H{
		"locations": locations,
		"count":     len(locations),
	})
}

// GetNearestLocations ranks locations by distance from the given point.
// Without lat/lon the caller's position is resolved through the
// coordinate provider.
// GET /api/v1/locations/nearest?lat=21.38&lon=-157.92&limit=3
func (ctrl *LocationController) GetNearestLocations(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	latRaw, lonRaw := c.Query("lat"), c.Query("lon")
	if latRaw == "" && lonRaw == "" {
		nearest, err := ctrl.locationService.NearestToCaller(c.Request.Context(), limit)
		if err != nil {
			log.Warn("Caller position lookup failed", map[string]interface{}{
				"error": err.Error(),
			})
			apperrors.ParseAndRespond(c, err, "locations nearest")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"locations": nearest,
			"count":     len(nearest),
		})
		return
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "lat must be a number")
		return
	}
	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "lon must be a number")
		return
	}

	nearest := ctrl.locationService.FindNearestLocations(lat, lon, limit)
	c.JSON(http.StatusOK, gin.H{
		"locations": nearest,
		"count":     len(nearest),
	})
}

// SearchLocations matches name, city, state and feature tags
// GET /api/v1/locations/search?q=honolulu
func (ctrl *LocationController) SearchLocations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "q is required")
		return
	}

	locations := ctrl.locationService.SearchLocations(query)
	c.JSON(http.StatusOK, gin.H{
		"locations": locations,
		"count":     len(locations),
		"query":     query,
	})
}

// GetLocationByID returns one location with display hours and open state
// GET /api/v1/locations/:id
func (ctrl *LocationController) GetLocationByID(c *gin.Context) {
	location, err := ctrl.locationService.GetLocationByID(c.Param("id"))
	if err != nil {
		apperrors.NotFound(c, apperrors.LocationNotFound, "Location not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location": location,
		"hours":    ctrl.locationService.FormatHours(location),
		"is_open":  ctrl.locationService.IsLocationOpen(location, time.Now()),
	})
}

// GetLocationHours returns the display hours only
// GET /api/v1/locations/:id/hours
func (ctrl *LocationController) GetLocationHours(c *gin.Context) {
	location, err := ctrl.locationService.GetLocationByID(c.Param("id"))
	if err != nil {
		apperrors.NotFound(c, apperrors.LocationNotFound, "Location not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location_id": location.ID,
		"hours":       ctrl.locationService.FormatHours(location),
		"is_open":     ctrl.locationService.IsLocationOpen(location, time.Now()),
	})
}

// GetLocationOpen answers whether the location is open right now
// GET /api/v1/locations/:id/open
func (ctrl *LocationController) GetLocationOpen(c *gin.Context) {
	location, err := ctrl.locationService.GetLocationByID(c.Param("id"))
	if err != nil {
		apperrors.NotFound(c, apperrors.LocationNotFound, "Location not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location_id": location.ID,
		"is_open":     ctrl.locationService.IsLocationOpen(location, time.Now()),
	})
}
