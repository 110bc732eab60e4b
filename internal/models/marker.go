package models

// MarkerGroup is a cluster of places sharing a rounded coordinate,
// rendered as one interactive marker. Not persisted; recomputed on
// every render.
type MarkerGroup struct {
	Position GeoPoint `json:"position"`
	Color    string   `json:"color"`
	Places   []Place  `json:"places"` // original input order
}
