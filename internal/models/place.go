package models

// Place represents one rendered point of interest with its final
// (offset-applied) position. Constructed once per CSV data row after
// geocoding; immutable thereafter.
type Place struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Website     string   `json:"website,omitempty"`
	Color       string   `json:"color,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Price       string   `json:"price,omitempty"`
	Position    GeoPoint `json:"position"`
	DistanceM   *float64 `json:"distance_m,omitempty"` // from the current-position pin
}
