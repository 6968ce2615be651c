package routes

import(
	"context"
	"fmt"
	"sort"

	"github.com/thomasaedk/routes/geo"
)

type Options struct {
	Classifier  ClassifierConfig
	BoxMerge    BoxMergeConfig
	ApplyOffset bool // when false, overlap is still detected but never applied
}

func DefaultOptions() Options {
	return Options{
		Classifier:  DefaultClassifierConfig(),
		BoxMerge:    DefaultBoxMergeConfig(),
		ApplyOffset: true,
	}
}

func (o Options)Validate() error {
	if err := o.Classifier.Validate(); err != nil { return err }
	if err := o.BoxMerge.Validate(); err != nil { return err }
	return nil
}

// Comparison is everything a renderer needs to draw two routes against each
// other. All fields are computed once by Compare and not mutated after.
type Comparison struct {
	A, B Route // inputs, sanitized

	SegmentsA, SegmentsB                 []Segment
	KilometerMarkersA, KilometerMarkersB []KilometerMarker
	DirectionArrowsA, DirectionArrowsB   []DirectionArrow
	MergedBoxes                          []geo.LatlongBox

	// Render-only coordinates; identical to the input tracks unless the
	// pair overlapped and the offset was applied.
	OffsetA, OffsetB Track
	Overlapping      bool

	SeparationA, SeparationB SeparationStats

	// Debugging junk
	Log string
}

// SeparationStats describe how far a track's matched points sat from the
// other track. Unmatched points don't contribute.
type SeparationStats struct {
	MatchedPoints int     `json:"matchedPoints"`
	MinMeters     float64 `json:"minMeters"`
	MedianMeters  float64 `json:"medianMeters"`
	MaxMeters     float64 `json:"maxMeters"`
}

func (ss SeparationStats)String() string {
	return fmt.Sprintf("%d matched, separation %.1f/%.1f/%.1fm min/median/max",
		ss.MatchedPoints, ss.MinMeters, ss.MedianMeters, ss.MaxMeters)
}

func separationStats(cps []ClassifiedPoint) SeparationStats {
	dists := []float64{}
	for _,cp := range cps {
		if cp.Class == ClassCommon { dists = append(dists, cp.DistMeters) }
	}

	ss := SeparationStats{MatchedPoints: len(dists)}
	if len(dists) == 0 { return ss }

	sort.Float64s(dists)
	ss.MinMeters = dists[0]
	ss.MaxMeters = dists[len(dists)-1]
	ss.MedianMeters = dists[len(dists)/2]
	if len(dists)%2 == 0 {
		ss.MedianMeters = (dists[len(dists)/2-1] + dists[len(dists)/2]) / 2.0
	}
	return ss
}

func (c *Comparison)logf(format string, args ...interface{}) {
	c.Log += fmt.Sprintf(format, args...)
}

func (c *Comparison)String() string {
	return fmt.Sprintf("-- %s\n%s", c.Summarize(), c.Log)
}

// CommonSegments returns A's common segments followed by B's.
func (c *Comparison)CommonSegments() []Segment {
	out := append([]Segment{}, SegmentsOfClass(c.SegmentsA, ClassCommon)...)
	return append(out, SegmentsOfClass(c.SegmentsB, ClassCommon)...)
}

func (c *Comparison)DifferenceSegmentsA() []Segment {
	return SegmentsOfClass(c.SegmentsA, ClassDifferent)
}

func (c *Comparison)DifferenceSegmentsB() []Segment {
	return SegmentsOfClass(c.SegmentsB, ClassDifferent)
}

// {{{ Compare

// Compare runs the whole pipeline on a pair of routes: sanitize, classify
// each track against the other, build segments, then derive the markers,
// arrows, merged difference boxes and anti-overlap offsets for rendering.
//
// The context is checked periodically inside the classifier loops, so a
// superseded comparison can be abandoned early; everything after that is
// cheap. Degenerate inputs (empty or one-point tracks) produce empty
// collections, not errors.
func Compare(ctx context.Context, a, b Route, opts Options) (*Comparison, error) {
	if err := opts.Validate(); err != nil { return nil, err }

	c := &Comparison{A: a.Sanitized(), B: b.Sanitized()}
	c.logf("compare %q vs %q (threshold %.0fm)\n", c.A.Name, c.B.Name, opts.Classifier.ThresholdMeters)
	c.logf("sanitize: A %d->%d points, B %d->%d points\n",
		len(a.Track), len(c.A.Track), len(b.Track), len(c.B.Track))

	cpsA, err := c.A.Track.ClassifyAgainst(ctx, c.B.Track, opts.Classifier)
	if err != nil { return nil, err }
	cpsB, err := c.B.Track.ClassifyAgainst(ctx, c.A.Track, opts.Classifier)
	if err != nil { return nil, err }

	c.SegmentsA = BuildSegments(cpsA)
	c.SegmentsB = BuildSegments(cpsB)
	c.SeparationA = separationStats(cpsA)
	c.SeparationB = separationStats(cpsB)
	c.logf("classify: A %d sampled -> %d segments, B %d sampled -> %d segments\n",
		len(cpsA), len(c.SegmentsA), len(cpsB), len(c.SegmentsB))

	c.KilometerMarkersA = c.A.Track.KilometerMarkers()
	c.KilometerMarkersB = c.B.Track.KilometerMarkers()
	c.DirectionArrowsA = c.A.Track.DirectionArrows()
	c.DirectionArrowsB = c.B.Track.DirectionArrows()

	diffs := append(c.DifferenceSegmentsA(), c.DifferenceSegmentsB()...)
	c.MergedBoxes = DifferenceBoxes(diffs, opts.BoxMerge)
	c.logf("boxes: %d difference segments -> %d merged boxes\n", len(diffs), len(c.MergedBoxes))

	if opts.ApplyOffset {
		c.OffsetA, c.OffsetB, c.Overlapping = OverlapOffset(c.A.Track, c.B.Track)
	} else {
		c.OffsetA, c.OffsetB = c.A.Track, c.B.Track
		c.Overlapping = c.A.Track.SignificantlyOverlaps(c.B.Track)
	}
	if c.Overlapping {
		c.logf("offset: tracks overlap; applied=%v\n", opts.ApplyOffset)
	}

	return c, nil
}

// }}}

// Summary boils a comparison down to a few headline numbers. The common
// distances are measured over the classified (sampled) points, so they are
// slight underestimates on very dense tracks.
type Summary struct {
	LengthMetersA, LengthMetersB float64
	CommonMetersA, CommonMetersB float64
	NumBoxes                     int
	Overlapping                  bool

	SeparationA, SeparationB SeparationStats
}

func (c *Comparison)Summarize() Summary {
	s := Summary{
		LengthMetersA: c.A.Track.LengthMeters(),
		LengthMetersB: c.B.Track.LengthMeters(),
		NumBoxes:      len(c.MergedBoxes),
		Overlapping:   c.Overlapping,
		SeparationA:   c.SeparationA,
		SeparationB:   c.SeparationB,
	}
	for _,seg := range SegmentsOfClass(c.SegmentsA, ClassCommon) {
		s.CommonMetersA += seg.LengthMeters()
	}
	for _,seg := range SegmentsOfClass(c.SegmentsB, ClassCommon) {
		s.CommonMetersB += seg.LengthMeters()
	}
	return s
}

func (s Summary)CommonFractionA() float64 { return fraction(s.CommonMetersA, s.LengthMetersA) }
func (s Summary)CommonFractionB() float64 { return fraction(s.CommonMetersB, s.LengthMetersB) }

func fraction(part, whole float64) float64 {
	if whole == 0 { return 0 }
	return part / whole
}

func (s Summary)String() string {
	return fmt.Sprintf("A: %.1fKM (%.0f%% common), B: %.1fKM (%.0f%% common), %d boxes, overlap=%v",
		s.LengthMetersA/1000, 100*s.CommonFractionA(),
		s.LengthMetersB/1000, 100*s.CommonFractionB(),
		s.NumBoxes, s.Overlapping)
}
