package geo

import "math"

// EarthRadiusMeters is the mean earth radius used by Distance.
const EarthRadiusMeters = 6371000

// Point is a WGS84 coordinate pair in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsValid reports whether the point is a finite coordinate inside the WGS84 ranges.
func (p Point) IsValid() bool {
	return IsValidCoordinates(p.Latitude, p.Longitude)
}

// IsValidCoordinates checks lat ∈ [-90,90] and lon ∈ [-180,180]. NaN and Inf are rejected.
func IsValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Distance returns the great-circle distance between a and b in meters (haversine).
func Distance(a, b Point) float64 {
	return HaversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// HaversineDistance returns the great-circle distance in meters between two coordinates.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	// Clamp rounding noise so Sqrt(1-a) never sees a negative number.
	a = math.Min(1, math.Max(0, a))

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// OffsetNorth returns the point lying meters north of p along its meridian.
func OffsetNorth(p Point, meters float64) Point {
	return Point{
		Latitude:  p.Latitude + toDegrees(meters/EarthRadiusMeters),
		Longitude: p.Longitude,
	}
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

func toDegrees(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}
