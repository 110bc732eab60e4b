package models

// GeoPoint represents a WGS84 coordinate
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate lies within WGS84 bounds
func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// OffsetSpec represents a local planar displacement in meters
// relative to a base coordinate
type OffsetSpec struct {
	NorthM float64 `json:"north_m"`
	EastM  float64 `json:"east_m"`
}

// IsZero reports whether the offset is a no-op
func (o OffsetSpec) IsZero() bool {
	return o.NorthM == 0 && o.EastM == 0
}
