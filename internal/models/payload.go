package models

// RenderPayload is the single structure handed to the map front end.
// Warnings collect the per-row problems that were skipped over; the
// build never fails for one bad row.
type RenderPayload struct {
	MapCenter  GeoPoint      `json:"map_center"`
	Zoom       int           `json:"zoom"`
	CurrentPin *GeoPoint     `json:"current_pin"`
	Places     []Place       `json:"places"`
	Shapes     []Shape       `json:"shapes"`
	Markers    []MarkerGroup `json:"markers"`
	Warnings   []string      `json:"warnings"`
}
