package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mrcow/mrcow-backend/internal/app/service"
	"github.com/mrcow/mrcow-backend/pkg/geo"
)

// ErrorInfo is a classified error ready for the wire.
type ErrorInfo struct {
	Status  int    // HTTP status code
	Code    string // code from codes.go
	Message string // human readable message
}

// ParseError classifies a service error into a status, code and message.
// Sensitive internals stay hidden; the message tells the caller what to fix.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Status:  http.StatusInternalServerError,
			Code:    InternalServerError,
			Message: "Something went wrong",
		}
	}

	// 1. Service sentinels
	switch {
	case errors.Is(err, service.ErrMenuItemNotFound):
		return ErrorInfo{http.StatusNotFound, MenuItemNotFound, "Menu item not found"}
	case errors.Is(err, service.ErrLocationNotFound):
		return ErrorInfo{http.StatusNotFound, LocationNotFound, "Location not found"}
	case errors.Is(err, service.ErrInvalidQuantity):
		return ErrorInfo{http.StatusBadRequest, ValidationInvalidRange, "Quantity must be at least 1"}
	case errors.Is(err, service.ErrInvalidTip):
		return ErrorInfo{http.StatusBadRequest, CartInvalidTip, "Tip cannot be negative"}
	}

	// 2. Geolocation provider errors
	switch {
	case errors.Is(err, geo.ErrPermissionDenied):
		return ErrorInfo{http.StatusForbidden, GeoPermissionDenied, "Location lookup was refused"}
	case errors.Is(err, geo.ErrTimeout):
		return ErrorInfo{http.StatusGatewayTimeout, GeoTimeout, "Location lookup timed out"}
	case errors.Is(err, geo.ErrUnavailable):
		return ErrorInfo{http.StatusServiceUnavailable, GeoUnavailable, "Location is currently unavailable"}
	}

	// 3. Network errors from upstream calls
	errStrLower := strings.ToLower(err.Error())
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Status:  http.StatusBadGateway,
			Code:    InternalExternalAPI,
			Message: "An upstream service is unreachable. Please try again shortly",
		}
	}

	// 4. Default internal error
	return ErrorInfo{
		Status:  http.StatusInternalServerError,
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "add") || strings.Contains(contextLower, "create") {
		return "Could not add the item. Please try again shortly"
	}
	if strings.Contains(contextLower, "update") {
		return "Could not apply the update. Please try again shortly"
	}
	if strings.Contains(contextLower, "export") {
		return "Could not generate the report. Please try again shortly"
	}

	return "Something went wrong. Please try again shortly"
}

// ParseAndRespond classifies the error and writes the response in one call.
func ParseAndRespond(c interface{ JSON(int, interface{}) }, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(errorInfo.Status, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}
