package geo

import "fmt"

// LatlongLine is a straight segment between two points. When the line was
// derived from a track, I and J carry the indices of the source points.
type LatlongLine struct {
	From, To Latlong
	I, J     int
}

func (l LatlongLine) String() string { return fmt.Sprintf("%v->%v", l.From, l.To) }

func (l LatlongLine) IsDegenerate() bool { return l.From.Equal(l.To) }

func (l LatlongLine) Bearing() Bearing { return l.From.BearingTowards(l.To) }

func (l LatlongLine) CenterPoint() Latlong { return l.From.InterpolateTo(l.To, 0.5) }

// ClosestTo is the point on the segment nearest to p. The projection is done
// in raw lat/long space (fine over segment-sized spans), with the parameter
// clamped to the segment's endpoints.
func (l LatlongLine) ClosestTo(p Latlong) Latlong {
	dLat := l.To.Lat - l.From.Lat
	dLong := l.To.Long - l.From.Long

	lenSq := dLat*dLat + dLong*dLong
	if lenSq == 0 { return l.From }

	t := ((p.Lat-l.From.Lat)*dLat + (p.Long-l.From.Long)*dLong) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return Latlong{l.From.Lat + t*dLat, l.From.Long + t*dLong}
}

// DistMetersToLine is the great-circle distance from p to the nearest point
// on the segment.
func (p Latlong) DistMetersToLine(l LatlongLine) float64 {
	return p.DistMeters(l.ClosestTo(p))
}
