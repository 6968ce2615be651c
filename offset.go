package routes

import "github.com/thomasaedk/routes/geo"

const(
	// Two tracks count as significantly overlapping when any sampled
	// cross-track pair of points comes within this distance.
	KOverlapThresholdMeters = 15.0

	// Total sideways separation applied to an overlapping pair; each track
	// moves half of it, in opposite directions.
	KOffsetDistanceMeters = 8.0

	kOffsetMinStride  = 20
	kOffsetMaxSamples = 50
)

func offsetSamples(t Track) []geo.Latlong {
	stride := len(t) / kOffsetMaxSamples
	if stride < kOffsetMinStride { stride = kOffsetMinStride }
	out := []geo.Latlong{}
	for i := 0; i < len(t); i += stride {
		out = append(out, t[i].Latlong)
	}
	return out
}

// SignificantlyOverlaps compares a sampled subset of each track against the
// other and reports whether any pair lands within KOverlapThresholdMeters.
func (t Track)SignificantlyOverlaps(other Track) bool {
	aPts, bPts := offsetSamples(t), offsetSamples(other)
	for _,pa := range aPts {
		for _,pb := range bPts {
			if pa.DistMeters(pb) < KOverlapThresholdMeters { return true }
		}
	}
	return false
}

// OverallBearing is the straight-line bearing from the track's first point
// to its last. False for short tracks, and for loops that close exactly.
func (t Track)OverallBearing() (geo.Bearing, bool) {
	if len(t) < 2 { return 0, false }
	if t[0].Latlong.Equal(t[len(t)-1].Latlong) { return 0, false }
	return t[0].BearingTowards(t[len(t)-1].Latlong), true
}

// LaterallyShifted rigidly moves every point sideways relative to the
// track's overall bearing: positive meters to the right, negative to the
// left. A track with no overall bearing comes back untouched.
func (t Track)LaterallyShifted(meters float64) Track {
	overall, ok := t.OverallBearing()
	if !ok || meters == 0 { return t }

	perp := overall.Rotated(90)
	out := make(Track, len(t))
	for i,tp := range t {
		tp.Latlong = tp.Latlong.PointAtBearing(perp, meters)
		out[i] = tp
	}
	return out
}

// OverlapOffset nudges two near-coincident tracks apart so both stay visible
// when drawn, moving each a half-offset to opposite sides of its own overall
// bearing. Tracks that don't significantly overlap come back unchanged.
//
// The shift is one rigid offset per track. Tracks that split apart and rejoin
// several times would need a per-section offset to separate cleanly; they
// don't get one, and the halves drawn between crossings may still sit on top
// of each other.
func OverlapOffset(a, b Track) (Track, Track, bool) {
	if !a.SignificantlyOverlaps(b) {
		return a, b, false
	}
	return a.LaterallyShifted(-KOffsetDistanceMeters / 2),
		b.LaterallyShifted(KOffsetDistanceMeters / 2),
		true
}
