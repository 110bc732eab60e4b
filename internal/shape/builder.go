package shape

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/mnakagawa/eatmap-backend-go/internal/models"
	"github.com/mnakagawa/eatmap-backend-go/internal/spatial"
)

// Corner-row name patterns. The numeric key links the two rows of a pair.
var (
	upperLeftPattern  = regexp.MustCompile(`^左上(\d+)$`)
	lowerRightPattern = regexp.MustCompile(`^右下(\d+)$`)
)

// Label anchor insets in meters, per shape kind. The anchor sits inward
// from the south-east corner; the ellipse inset is larger because the
// bbox corner lies outside the ellipse outline.
const (
	rectangleInsetM = 30.0
	rotatedInsetM   = 40.0
	ellipseInsetM   = 60.0
)

// axisAlignedEpsilon: rotations within this of zero render as plain rectangles
const axisAlignedEpsilon = 1e-6

// minRadiusM clamps degenerate ellipse radii
const minRadiusM = 1.0

// Corner is one resolved shape-pair corner row. Point is nil when the
// row's coordinates could not be resolved.
type Corner struct {
	Key       int
	UpperLeft bool
	Point     *models.GeoPoint
	SpecText  string // free-text shape specification (upper-left row's is used)
	Label     string // row description
}

// MatchCornerRow reports whether a row name marks a shape-pair corner
// and, if so, returns the pair key and corner role.
func MatchCornerRow(name string) (key int, upperLeft bool, ok bool) {
	if m := upperLeftPattern.FindStringSubmatch(name); m != nil {
		key, _ = strconv.Atoi(m[1])
		return key, true, true
	}
	if m := lowerRightPattern.FindStringSubmatch(name); m != nil {
		key, _ = strconv.Atoi(m[1])
		return key, false, true
	}
	return 0, false, false
}

// Build pairs corner rows by key and derives one overlay shape per
// complete pair. Incomplete or unresolved pairs are skipped with a
// warning; one bad pair never aborts the batch. Output is ordered by key.
func Build(corners []Corner) ([]models.Shape, []string) {
	upperLeft := make(map[int]*Corner)
	lowerRight := make(map[int]*Corner)
	keySet := make(map[int]bool)

	for i := range corners {
		c := &corners[i]
		keySet[c.Key] = true
		if c.UpperLeft {
			upperLeft[c.Key] = c
		} else {
			lowerRight[c.Key] = c
		}
	}

	keys := make([]int, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var shapes []models.Shape
	var warnings []string

	for _, key := range keys {
		ul, lr := upperLeft[key], lowerRight[key]
		if ul == nil || lr == nil {
			warnings = append(warnings, fmt.Sprintf("pair %d: missing upper-left or lower-right corner", key))
			continue
		}
		if ul.Point == nil || lr.Point == nil {
			warnings = append(warnings, fmt.Sprintf("pair %d: corner coordinates could not be resolved", key))
			continue
		}

		shapes = append(shapes, buildOne(key, ul, lr))
	}

	return shapes, warnings
}

// buildOne derives a single shape from a complete, resolved pair.
func buildOne(key int, ul, lr *Corner) models.Shape {
	// The pair defines a bounding box regardless of which corner was
	// visually upper-left; a swapped pair renders identically.
	south, west, north, east := spatial.BoundingBox([]models.GeoPoint{*ul.Point, *lr.Point})
	center := spatial.Midpoint(south, west, north, east)

	spec := ParseSpec(ul.SpecText)

	// Half extents in meters at the center's latitude scale.
	halfHeightM, _ := spatial.Inverse(center.Lat, (north-south)/2, 0)
	_, halfWidthM := spatial.Inverse(center.Lat, 0, (east-west)/2)

	s := models.Shape{
		Kind:        spec.Kind,
		Key:         key,
		RotationDeg: spec.RotationDeg,
		Style:       StyleForKey(key),
		Label:       ul.Label,
		SubLabel:    lr.Label,
	}

	switch {
	case spec.Kind == models.ShapeEllipse:
		s.Center = &center
		s.RadiusNorthM = math.Max(halfHeightM, minRadiusM)
		s.RadiusEastM = math.Max(halfWidthM, minRadiusM)
		s.LabelAnchor = insetAnchor(south, east, ellipseInsetM)

	case math.Abs(spec.RotationDeg) <= axisAlignedEpsilon:
		s.Kind = models.ShapeRectangle
		s.RotationDeg = 0
		s.Bounds = &models.Bounds{North: north, South: south, East: east, West: west}
		s.LabelAnchor = insetAnchor(south, east, rectangleInsetM)

	default:
		s.Kind = models.ShapeRotatedRectangle
		s.Path = rotatedPath(center, halfWidthM, halfHeightM, spec.RotationDeg)
		s.LabelAnchor = rotatedAnchor(center, halfWidthM, halfHeightM, spec.RotationDeg)
	}

	return s
}

// rotatedPath computes the four rectangle corners in a local meter
// frame centered on the bbox midpoint, rotates them, and projects each
// back to lat/lng. Unrotated local order: NE, NW, SW, SE.
func rotatedPath(center models.GeoPoint, halfWidthM, halfHeightM, rotationDeg float64) []models.GeoPoint {
	locals := [4][2]float64{
		{halfWidthM, halfHeightM},   // NE
		{-halfWidthM, halfHeightM},  // NW
		{-halfWidthM, -halfHeightM}, // SW
		{halfWidthM, -halfHeightM},  // SE
	}

	path := make([]models.GeoPoint, 0, len(locals))
	for _, l := range locals {
		eastM, northM := rotate(l[0], l[1], rotationDeg)
		path = append(path, offsetPoint(center, northM, eastM))
	}
	return path
}

// rotatedAnchor insets the SE corner in the local frame, then rotates
// and projects it like the path corners.
func rotatedAnchor(center models.GeoPoint, halfWidthM, halfHeightM, rotationDeg float64) models.GeoPoint {
	eastM, northM := rotate(halfWidthM-rotatedInsetM, -(halfHeightM - rotatedInsetM), rotationDeg)
	return offsetPoint(center, northM, eastM)
}

// insetAnchor moves inward (north-west) from the south-east bbox corner
// so the label sits near the corner instead of over the shape content.
func insetAnchor(south, east, insetM float64) models.GeoPoint {
	dlat, dlng := spatial.Project(south, insetM, -insetM)
	return models.GeoPoint{Lat: south + dlat, Lng: east + dlng}
}

// rotate applies the standard 2D rotation matrix to local east/north
// components
func rotate(eastM, northM, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return eastM*cos - northM*sin, eastM*sin + northM*cos
}

func offsetPoint(base models.GeoPoint, northM, eastM float64) models.GeoPoint {
	dlat, dlng := spatial.Project(base.Lat, northM, eastM)
	return models.GeoPoint{Lat: base.Lat + dlat, Lng: base.Lng + dlng}
}
