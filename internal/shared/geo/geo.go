package geo

import "math"

const (
	earthRadiusKm   = 6371.0
	metersPerDegree = 111000.0
)

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point is inside latitude/longitude bounds.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Offset shifts the point by planar meter deltas using the equirectangular
// approximation: accurate for loops under ~20 km, which is all this service
// ever generates.
func (p Point) Offset(northM, eastM float64) Point {
	return Point{
		Lat: p.Lat + northM/metersPerDegree,
		Lng: p.Lng + eastM/(metersPerDegree*math.Cos(p.Lat*math.Pi/180)),
	}
}

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
