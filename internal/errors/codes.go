package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The storefront maps these codes to display messages.

const (
	// ==================== Cart (CART_) ====================
	CartItemNotFound   = "CART_ITEM_NOT_FOUND"   // no line with that id
	CartInvalidTip     = "CART_INVALID_TIP"      // negative tip amount
	CartInvalidRequest = "CART_INVALID_REQUEST"  // malformed cart payload

	// ==================== Menu (MENU_) ====================
	MenuItemNotFound    = "MENU_ITEM_NOT_FOUND"    // unknown menu item id
	MenuInvalidCategory = "MENU_INVALID_CATEGORY"  // unknown category slug

	// ==================== Location (LOCATION_) ====================
	LocationNotFound = "LOCATION_NOT_FOUND" // unknown location id

	// ==================== Geolocation (GEO_) ====================
	GeoPermissionDenied = "GEO_PERMISSION_DENIED" // provider refused the lookup
	GeoUnavailable      = "GEO_UNAVAILABLE"       // no position fix available
	GeoTimeout          = "GEO_TIMEOUT"           // lookup did not finish in time

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // malformed request body
	ValidationInvalidID     = "VALIDATION_INVALID_ID"     // malformed id
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"  // value out of range
	ValidationRequired      = "VALIDATION_REQUIRED"       // missing required field

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // unclassified failure
	InternalStorage     = "INTERNAL_STORAGE"      // persistence backend failure
	InternalExternalAPI = "INTERNAL_EXTERNAL_API" // upstream service failure
)
