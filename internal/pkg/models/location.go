package models

// Coordinates is a raw device position as submitted by a client.
// A position only counts when both fields are present.
type Coordinates struct {
	Lat *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng *float64 `json:"lng" validate:"omitempty,longitude"`
}

// NewCoordinates builds a complete Coordinates value
func NewCoordinates(lat, lng float64) *Coordinates {
	return &Coordinates{Lat: &lat, Lng: &lng}
}

// Complete reports whether both latitude and longitude were supplied
func (c *Coordinates) Complete() bool {
	return c != nil && c.Lat != nil && c.Lng != nil
}

// MapLinks holds ready-to-open deep-links for a corrected position
type MapLinks struct {
	AmapURL  string `json:"amapUrl"`
	AppleURL string `json:"appleUrl"`
}

// RequesterLocation is the position the requester shared when notifying.
// Lat/Lng are the regionally corrected coordinates the links point at.
type RequesterLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	RawLat  float64 `json:"rawLat"`
	RawLng  float64 `json:"rawLng"`
	Geohash string  `json:"geohash"`
	MapLinks
}

// OwnerLocation is the position the owner shared on their latest confirmation
type OwnerLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	RawLat  float64 `json:"rawLat"`
	RawLng  float64 `json:"rawLng"`
	Geohash string  `json:"geohash"`
	MapLinks
	ConfirmedAt int64 `json:"timestamp"` // unix milliseconds
}
