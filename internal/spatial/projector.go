package spatial

import (
	"math"
)

// MetersPerDegreeLat is the flat-earth scale factor: one degree of
// latitude is treated as exactly 111,320 meters. One degree of
// longitude shrinks by cos(lat) toward the poles.
const MetersPerDegreeLat = 111320.0

// Project converts a north/east displacement in meters at the given
// latitude into a latitude/longitude delta in degrees. The
// approximation is local only; it is valid for offsets of at most a
// few kilometers. At the poles the longitude delta is 0.
func Project(latDeg, northM, eastM float64) (dlat, dlng float64) {
	mPerDegLng := MetersPerDegreeLat * math.Cos(latDeg*math.Pi/180)

	dlat = northM / MetersPerDegreeLat
	if mPerDegLng != 0 {
		dlng = eastM / mPerDegLng
	}
	return dlat, dlng
}

// Inverse converts a latitude/longitude delta back into north/east
// meters at the given reference latitude. Inverse(lat, Project(lat, n, e))
// round-trips within floating-point tolerance for small offsets.
func Inverse(latDeg, dlat, dlng float64) (northM, eastM float64) {
	northM = dlat * MetersPerDegreeLat
	eastM = dlng * MetersPerDegreeLat * math.Cos(latDeg*math.Pi/180)
	return northM, eastM
}
