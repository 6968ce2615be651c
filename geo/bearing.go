package geo

import "math"

// Bearing is a direction of travel, in radians in (-pi, pi], as produced by
// Latlong.BearingTowards. Zero is due north, positive is clockwise (east).
type Bearing float64

func BearingFromDegrees(deg float64) Bearing {
	return Bearing(deg * kDegToRad)
}

// Degrees renders the bearing as a compass heading in [0, 360).
func (b Bearing) Degrees() float64 {
	deg := math.Mod(float64(b)*kRadToDeg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AbsDiff is the smallest angle between two bearings, in radians in [0, pi].
func (b Bearing) AbsDiff(o Bearing) float64 {
	d := math.Mod(float64(b-o), 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	return math.Abs(d)
}

// Rotated adds deltaDeg degrees, renormalizing into (-pi, pi].
func (b Bearing) Rotated(deltaDeg float64) Bearing {
	r := math.Mod(float64(b)+deltaDeg*kDegToRad, 2*math.Pi)
	if r > math.Pi {
		r -= 2 * math.Pi
	}
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return Bearing(r)
}
