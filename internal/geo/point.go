package geo

import "math"

// Point is a position in E7 representation: decimal degrees scaled by 1e7,
// stored as int32. The zero value is the 0°N 0°E origin.
type Point struct {
	Lat int32
	Lon int32
}

const e7 = 1e7

// LatDegrees returns the latitude in decimal degrees.
func (p Point) LatDegrees() float64 { return float64(p.Lat) / e7 }

// LonDegrees returns the longitude in decimal degrees.
func (p Point) LonDegrees() float64 { return float64(p.Lon) / e7 }

// earth radius in meters
const earthRadiusMeters = 6371000

// Haversine returns the spherical great-circle distance between a and b in
// whole meters. The fractional part is truncated, so per-segment sums stay
// reproducible across platforms.
func Haversine(a, b Point) int {
	lat1 := radians(a.LatDegrees())
	lat2 := radians(b.LatDegrees())
	dLat := radians(b.LatDegrees() - a.LatDegrees())
	dLon := radians(b.LonDegrees() - a.LonDegrees())

	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))
	return int(earthRadiusMeters * c)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Rect is an axis-aligned rectangle given by two opposite corners in any
// order.
type Rect struct {
	Lo Point
	Hi Point
}

// Contains reports whether p lies inside r, boundary included. The corners
// are normalized first, so {Lo, Hi} and {Hi, Lo} describe the same area.
func (r Rect) Contains(p Point) bool {
	left := min(r.Lo.Lon, r.Hi.Lon)
	right := max(r.Lo.Lon, r.Hi.Lon)
	bottom := min(r.Lo.Lat, r.Hi.Lat)
	top := max(r.Lo.Lat, r.Hi.Lat)
	return p.Lon >= left && p.Lon <= right && p.Lat >= bottom && p.Lat <= top
}
