package models

import (
	"strconv"
)

// Place is a free-text location with an optional ISO 3166 country code
type Place struct {
	City        string
	CountryCode string
}

// String returns the provider query form: "city" or "city,CC"
func (p Place) String() string {
	if p.CountryCode == "" {
		return p.City
	}
	return p.City + "," + p.CountryCode
}

// Coordinates is a latitude/longitude pair. Ranges are not checked locally.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// String returns "lat, lon"
func (c Coordinates) String() string {
	return FormatFloat(c.Latitude) + ", " + FormatFloat(c.Longitude)
}

// FormatFloat formats a float64 with the shortest exact representation
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
