package model

// Address is a structured street address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Contact holds a location's contact details.
type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// DayHours is one day's opening window. Open/Close are "HH:MM" 24-hour
// time-of-day strings; Closed marks the whole day closed.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// Location is a franchise store: immutable reference data owned by the
// location directory, referenced by the cart only through its id.
type Location struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Address     Address             `json:"address"`
	Coordinates Coordinates         `json:"coordinates"`
	Contact     Contact             `json:"contact"`
	Hours       map[string]DayHours `json:"hours"` // keyed by lowercase weekday name
	Features    []string            `json:"features,omitempty"`
	IsActive    bool                `json:"is_active"`
}

// LocationWithDistance pairs a location with its distance in miles from a
// query point.
type LocationWithDistance struct {
	Location
	Distance float64 `json:"distance"`
}
