package routes

import(
	"fmt"
	"time"

	"github.com/thomasaedk/routes/geo"
)

// A Track is a slice of TrackPoints. They are ordered from start to finish.
type Track []TrackPoint

func (t Track)Start() TrackPoint { return t[0] }
func (t Track)End() TrackPoint { return t[len(t)-1] }

func (t Track)String() string {
	if len(t) == 0 { return "Track: [empty]" }
	str := fmt.Sprintf("Track: %d points", len(t))
	if len(t) > 1 {
		s,e := t[0],t[len(t)-1]
		str += fmt.Sprintf(", %.1fKM (%.0f deg)", t.LengthKM(),
			s.BearingTowards(e.Latlong).Degrees())
		if !s.TimestampUTC.IsZero() && !e.TimestampUTC.IsZero() {
			str += fmt.Sprintf(", %s", e.TimestampUTC.Sub(s.TimestampUTC))
		}
	}
	return str
}

func (t Track)Duration() time.Duration {
	if len(t) < 2 { return 0 }
	return t.End().TimestampUTC.Sub(t.Start().TimestampUTC)
}

// LengthMeters sums the great-circle distances between consecutive points.
func (t Track)LengthMeters() float64 {
	total := 0.0
	for i := 1; i < len(t); i++ {
		total += t[i-1].DistMeters(t[i].Latlong)
	}
	return total
}

func (t Track)LengthKM() float64 { return t.LengthMeters() / 1000.0 }

func (t Track)Latlongs() []geo.Latlong {
	out := make([]geo.Latlong, len(t))
	for i,tp := range t {
		out[i] = tp.Latlong
	}
	return out
}

func (t Track)BoundingBox() geo.LatlongBox {
	return geo.BoundingBox(t.Latlongs())
}

// Sanitized drops points with non-finite or out-of-range coordinates. The
// geometry routines assume this has already happened.
func (t Track)Sanitized() Track {
	ret := make(Track, 0, len(t))
	for _,tp := range t {
		if tp.Latlong.IsValid() {
			ret = append(ret, tp)
		}
	}
	return ret
}

// AsLines returns the consecutive-pair line segments, with each line's I,J
// recording the indexes of its endpoints.
func (t Track)AsLines() []geo.LatlongLine {
	lines := []geo.LatlongLine{}
	for i := 1; i < len(t); i++ {
		line := t[i-1].LineTo(t[i].Latlong)
		line.I, line.J = i-1, i
		lines = append(lines, line)
	}
	return lines
}

// SampledIndices picks an evenly strided subset of the track's indexes, at
// most maxPoints of them plus the final index, which is always included so
// downstream segments reach the true end of the track.
func (t Track)SampledIndices(maxPoints int) []int {
	if len(t) == 0 { return nil }

	stride := 1
	if maxPoints > 0 { stride = len(t) / maxPoints }
	if stride < 1 { stride = 1 }

	idxs := []int{}
	for i := 0; i < len(t); i += stride {
		idxs = append(idxs, i)
	}
	if last := len(t) - 1; idxs[len(idxs)-1] != last {
		idxs = append(idxs, last)
	}
	return idxs
}

// BearingAt is the direction of travel at point i, taken from the point
// lookBack positions earlier (clamped to the start; the very first point
// looks forward instead). False when the track is too short or the two
// reference points coincide.
func (t Track)BearingAt(i, lookBack int) (geo.Bearing, bool) {
	if i < 0 || i >= len(t) { return 0, false }

	lo,hi := i-lookBack, i
	if lo < 0 { lo = 0 }
	if lo == hi {
		hi++
		if hi >= len(t) { return 0, false }
	}
	if t[lo].Latlong.Equal(t[hi].Latlong) { return 0, false }

	return t[lo].BearingTowards(t[hi].Latlong), true
}

// CumulativeMeters returns, for each point, the along-track distance from the
// start to that point. First entry is zero.
func (t Track)CumulativeMeters() []float64 {
	if len(t) == 0 { return nil }
	out := make([]float64, len(t))
	for i := 1; i < len(t); i++ {
		out[i] = out[i-1] + t[i-1].DistMeters(t[i].Latlong)
	}
	return out
}
