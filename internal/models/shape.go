package models

// ShapeKind discriminates the region overlay geometry
type ShapeKind string

// Shape kinds
const (
	ShapeRectangle        ShapeKind = "rectangle"
	ShapeRotatedRectangle ShapeKind = "rotated_rectangle"
	ShapeEllipse          ShapeKind = "ellipse"
)

// Bounds is an axis-aligned geographic bounding box
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// ShapeStyle carries the stroke/fill/label color triple for one overlay
type ShapeStyle struct {
	StrokeColor string `json:"stroke_color"`
	FillColor   string `json:"fill_color"`
	LabelColor  string `json:"label_color"`
}

// Shape represents one region overlay derived from a shape pair.
// Exactly one of Bounds, Path or Center is populated depending on Kind.
// Derived entirely from its pair; never mutated after construction.
type Shape struct {
	Kind ShapeKind `json:"kind"`
	Key  int       `json:"key"`

	Bounds       *Bounds    `json:"bounds,omitempty"`         // rectangle
	Path         []GeoPoint `json:"path,omitempty"`           // rotated rectangle, 4 corners
	Center       *GeoPoint  `json:"center,omitempty"`         // ellipse
	RadiusNorthM float64    `json:"radius_north_m,omitempty"` // ellipse, clamped >= 1
	RadiusEastM  float64    `json:"radius_east_m,omitempty"`  // ellipse, clamped >= 1

	// RotationDeg is applied at render time, not baked into the geometry
	// for ellipses; for rotated rectangles the path is already rotated.
	RotationDeg float64 `json:"rotation_deg"`

	Style       ShapeStyle `json:"style"`
	Label       string     `json:"label,omitempty"`     // primary, from the upper-left row
	SubLabel    string     `json:"sub_label,omitempty"` // secondary, from the lower-right row
	LabelAnchor GeoPoint   `json:"label_anchor"`
}
