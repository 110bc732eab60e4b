package spatial

import (
	"github.com/mnakagawa/eatmap-backend-go/internal/models"
)

// BoundingBox calculates the bounding box of a set of points
// Returns (south, west, north, east)
func BoundingBox(points []models.GeoPoint) (float64, float64, float64, float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	south, north := points[0].Lat, points[0].Lat
	west, east := points[0].Lng, points[0].Lng

	for _, p := range points[1:] {
		if p.Lat < south {
			south = p.Lat
		}
		if p.Lat > north {
			north = p.Lat
		}
		if p.Lng < west {
			west = p.Lng
		}
		if p.Lng > east {
			east = p.Lng
		}
	}

	return south, west, north, east
}

// Midpoint returns the arithmetic midpoint of a bounding box. Adequate
// for the small local extents a shape pair spans.
func Midpoint(south, west, north, east float64) models.GeoPoint {
	return models.GeoPoint{
		Lat: (south + north) / 2,
		Lng: (west + east) / 2,
	}
}
