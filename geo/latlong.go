// Package geo provides the spherical geometry primitives the rest of the
// module is built on: great-circle distances, bearings, destination points,
// and point-to-segment distances, all over WGS84 decimal-degree coordinates
// on a spherical earth (R = 6,371,000 m).
//
// Functions here do no input validation; callers are expected to filter
// non-finite or out-of-range coordinates first (see Latlong.IsValid), and
// results on junk input are NaN-propagating garbage.
package geo

import (
	"fmt"
	"math"
)

const (
	EarthRadiusMeters = 6371000.0

	kDegToRad = math.Pi / 180.0
	kRadToDeg = 180.0 / math.Pi
)

// Latlong is a position on the earth's surface, in decimal degrees.
type Latlong struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"lng"`
}

func (p Latlong) String() string { return fmt.Sprintf("(%.5f,%.5f)", p.Lat, p.Long) }

func (p Latlong) Equal(q Latlong) bool { return p.Lat == q.Lat && p.Long == q.Long }

// IsValid is true when both coordinates are finite and inside the WGS84
// decimal-degree ranges. The geometry routines themselves never call this.
func (p Latlong) IsValid() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) { return false }
	if math.IsNaN(p.Long) || math.IsInf(p.Long, 0) { return false }
	return p.Lat >= -90 && p.Lat <= 90 && p.Long >= -180 && p.Long <= 180
}

// DistMeters is the haversine great-circle distance between two points.
func (p Latlong) DistMeters(q Latlong) float64 {
	lat1 := p.Lat * kDegToRad
	lat2 := q.Lat * kDegToRad
	dLat := (q.Lat - p.Lat) * kDegToRad
	dLong := (q.Long - p.Long) * kDegToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLong/2)*math.Sin(dLong/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

func (p Latlong) DistKM(q Latlong) float64 { return p.DistMeters(q) / 1000.0 }

// BearingTowards is the initial bearing from p towards q, in (-pi, pi].
func (p Latlong) BearingTowards(q Latlong) Bearing {
	lat1 := p.Lat * kDegToRad
	lat2 := q.Lat * kDegToRad
	dLong := (q.Long - p.Long) * kDegToRad

	y := math.Sin(dLong) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLong)

	return Bearing(math.Atan2(y, x))
}

// PointAtBearing walks distMeters from p along the given bearing, using the
// direct spherical formula. A negative distance walks the reciprocal bearing.
func (p Latlong) PointAtBearing(b Bearing, distMeters float64) Latlong {
	delta := distMeters / EarthRadiusMeters
	theta := float64(b)
	lat1 := p.Lat * kDegToRad
	long1 := p.Long * kDegToRad

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) +
		math.Cos(lat1)*math.Sin(delta)*math.Cos(theta))
	long2 := long1 + math.Atan2(math.Sin(theta)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2))

	return Latlong{lat2 * kRadToDeg, normalizeLong(long2 * kRadToDeg)}
}

// InterpolateTo lerps between two points in raw lat/long space. This is not
// geodesic interpolation; it matches how marker positions are derived.
func (p Latlong) InterpolateTo(q Latlong, ratio float64) Latlong {
	return Latlong{
		Lat:  p.Lat + (q.Lat-p.Lat)*ratio,
		Long: p.Long + (q.Long-p.Long)*ratio,
	}
}

func (p Latlong) LineTo(q Latlong) LatlongLine { return LatlongLine{From: p, To: q} }

// BoxTo builds the box whose opposite corners are p and q, whichever way
// around they arrive.
func (p Latlong) BoxTo(q Latlong) LatlongBox {
	b := LatlongBox{SW: p, NE: p}
	return b.Enclose(q)
}

func normalizeLong(l float64) float64 {
	for l > 180 {
		l -= 360
	}
	for l < -180 {
		l += 360
	}
	return l
}
