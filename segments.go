package routes

import "fmt"

// Segment is a contiguous run of a track's sampled points that all carry the
// same classification. I and J are the source-track indexes of the first and
// last point.
type Segment struct {
	Points Track
	Class  Classification
	I, J   int
}

func (s Segment)String() string {
	return fmt.Sprintf("%s[%d-%d] %d points, %.2fKM", s.Class, s.I, s.J,
		len(s.Points), s.LengthKM())
}

func (s Segment)LengthMeters() float64 { return s.Points.LengthMeters() }
func (s Segment)LengthKM() float64 { return s.Points.LengthKM() }

// {{{ BuildSegments

// BuildSegments collapses a classified point sequence into segments. The
// segments partition the input: concatenated in order they reproduce every
// point exactly once, and classifications strictly alternate.
//
// A run of just one point can't render as a line, so instead of becoming a
// segment it is folded into the preceding segment (or into the following run,
// when it sits at the very start). The folded point takes its absorber's
// classification; a lone blip between two longer runs disappears into them.
func BuildSegments(cps []ClassifiedPoint) []Segment {
	if len(cps) < 2 { return nil }

	// Break into runs of identical classification.
	type run struct {
		class Classification
		pts   []ClassifiedPoint
	}
	runs := []run{}
	cur := run{class: cps[0].Class}
	for _,cp := range cps {
		if cp.Class != cur.class {
			runs = append(runs, cur)
			cur = run{class: cp.Class}
		}
		cur.pts = append(cur.pts, cp)
	}
	runs = append(runs, cur)

	// Fold single-point runs into a neighbor.
	folded := []run{}
	pending := []ClassifiedPoint{} // head singletons waiting for a real run
	for _,r := range runs {
		if len(r.pts) == 1 {
			if len(folded) == 0 {
				pending = append(pending, r.pts...)
			} else {
				last := &folded[len(folded)-1]
				last.pts = append(last.pts, r.pts[0])
			}
			continue
		}
		if len(pending) > 0 {
			r.pts = append(append([]ClassifiedPoint{}, pending...), r.pts...)
			pending = nil
		}
		folded = append(folded, r)
	}
	if len(pending) > 0 {
		// Every run was a singleton; emit them as one segment.
		folded = append(folded, run{class: pending[len(pending)-1].Class, pts: pending})
	}

	// Folding can leave two same-class neighbors; merge them so the
	// alternation holds.
	segs := []Segment{}
	for _,r := range folded {
		first, last := r.pts[0], r.pts[len(r.pts)-1]
		if n := len(segs); n > 0 && segs[n-1].Class == r.class {
			segs[n-1].Points = append(segs[n-1].Points, runTrack(r.pts)...)
			segs[n-1].J = last.Index
			continue
		}
		segs = append(segs, Segment{
			Points: runTrack(r.pts),
			Class:  r.class,
			I:      first.Index,
			J:      last.Index,
		})
	}

	return segs
}

// }}}

func runTrack(cps []ClassifiedPoint) Track {
	t := make(Track, len(cps))
	for i,cp := range cps {
		t[i] = cp.TrackPoint
	}
	return t
}

// SegmentsOfClass filters to just the segments with the given classification.
func SegmentsOfClass(segs []Segment, class Classification) []Segment {
	out := []Segment{}
	for _,s := range segs {
		if s.Class == class {
			out = append(out, s)
		}
	}
	return out
}
