package routes

import (
	"context"
	"math"
	"strings"
	"testing"
)

func compareOrDie(t *testing.T, a, b Route, opts Options) *Comparison {
	c, err := Compare(context.Background(), a, b, opts)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	return c
}

func TestCompareIdenticalRoutes(t *testing.T) {
	a := Route{Id: "a", Name: "morning run", Color: "#d33", Track: loadTrack(t, runA)}
	b := Route{Id: "b", Name: "same again", Color: "#33d", Track: loadTrack(t, runA)}

	c := compareOrDie(t, a, b, DefaultOptions())

	if len(c.SegmentsA) != 1 || c.SegmentsA[0].Class != ClassCommon {
		t.Errorf("identical A: got segments %v", c.SegmentsA)
	}
	if len(c.SegmentsB) != 1 || c.SegmentsB[0].Class != ClassCommon {
		t.Errorf("identical B: got segments %v", c.SegmentsB)
	}
	if n := len(c.CommonSegments()); n != 2 {
		t.Errorf("identical: %d common segments in bundle, expected 2", n)
	}
	if len(c.DifferenceSegmentsA()) != 0 || len(c.DifferenceSegmentsB()) != 0 {
		t.Errorf("identical: unexpected difference segments")
	}
	if len(c.MergedBoxes) != 0 {
		t.Errorf("identical: got %d boxes", len(c.MergedBoxes))
	}

	if len(c.KilometerMarkersA) != 1 || len(c.KilometerMarkersB) != 1 {
		t.Errorf("identical: markers %d/%d, expected 1/1",
			len(c.KilometerMarkersA), len(c.KilometerMarkersB))
	}
	if len(c.DirectionArrowsA) != 1 {
		t.Errorf("identical: got %d arrows", len(c.DirectionArrowsA))
	}

	if !c.Overlapping {
		t.Errorf("identical tracks should be flagged overlapping")
	}
	if d := c.OffsetA[0].DistMeters(c.OffsetB[0].Latlong); math.Abs(d-KOffsetDistanceMeters) > 0.05 {
		t.Errorf("offset tracks %.2fm apart, expected %.1f", d, KOffsetDistanceMeters)
	}

	if frac := c.Summarize().CommonFractionA(); frac < 0.999 {
		t.Errorf("identical: common fraction %.3f", frac)
	}
	if !strings.Contains(c.Log, "compare") {
		t.Errorf("log missing: %q", c.Log)
	}
}

// A and B share both ends but B detours 550m north through the middle. Each
// track should split common/different/common, and the two difference regions
// should box up separately.
func TestCompareDivergentMiddle(t *testing.T) {
	aTrack := equatorTrack(21, 0.001)
	bTrack := append(Track{}, aTrack...)
	for i := 8; i <= 12; i++ {
		bTrack[i].Lat += 0.005
	}

	a := Route{Name: "flat", Track: aTrack}
	b := Route{Name: "detour", Track: bTrack}
	c := compareOrDie(t, a, b, DefaultOptions())

	wantClasses := []Classification{ClassCommon, ClassDifferent, ClassCommon}
	for _,segs := range [][]Segment{c.SegmentsA, c.SegmentsB} {
		if len(segs) != 3 {
			t.Fatalf("divergent middle: got %d segments: %v", len(segs), segs)
		}
		for i,s := range segs {
			if s.Class != wantClasses[i] {
				t.Errorf("segment %d: class %s", i, s.Class)
			}
		}
	}
	if c.SegmentsA[1].I != 8 || c.SegmentsA[1].J != 12 {
		t.Errorf("A's difference segment spans [%d,%d], expected [8,12]",
			c.SegmentsA[1].I, c.SegmentsA[1].J)
	}

	if len(c.MergedBoxes) != 2 {
		t.Errorf("divergent middle: got %d boxes, expected one per side", len(c.MergedBoxes))
	}

	if len(c.KilometerMarkersA) != 2 {
		t.Errorf("flat track markers: got %d, expected 2", len(c.KilometerMarkersA))
	}
	if len(c.KilometerMarkersB) != 3 {
		t.Errorf("detour track markers: got %d, expected 3", len(c.KilometerMarkersB))
	}

	frac := c.Summarize().CommonFractionA()
	if frac <= 0 || frac >= 1 {
		t.Errorf("divergent middle: common fraction %.3f should be partial", frac)
	}
}

func TestCompareDisjointRoutes(t *testing.T) {
	a := Route{Name: "south", Track: equatorTrack(21, 0.001)}
	b := Route{Name: "north", Track: shifted(equatorTrack(21, 0.001), 0.1)}

	c := compareOrDie(t, a, b, DefaultOptions())

	if n := len(c.CommonSegments()); n != 0 {
		t.Errorf("disjoint: %d common segments", n)
	}
	if len(c.DifferenceSegmentsA()) != 1 || len(c.DifferenceSegmentsB()) != 1 {
		t.Errorf("disjoint: difference segments %d/%d",
			len(c.DifferenceSegmentsA()), len(c.DifferenceSegmentsB()))
	}
	if len(c.MergedBoxes) != 2 {
		t.Errorf("disjoint: got %d boxes", len(c.MergedBoxes))
	}

	if c.Overlapping {
		t.Errorf("disjoint tracks flagged overlapping")
	}
	for i := range c.A.Track {
		if !c.OffsetA[i].Latlong.Equal(c.A.Track[i].Latlong) {
			t.Fatalf("disjoint: offset changed a point")
		}
	}

	if frac := c.Summarize().CommonFractionA(); frac != 0 {
		t.Errorf("disjoint: common fraction %.3f", frac)
	}
}

func TestCompareSeparationStats(t *testing.T) {
	// Two parallel tracks 100m apart, with a threshold wide enough to
	// match them: every sampled point should sit about 100m away.
	a := Route{Name: "a", Track: equatorTrack(30, 0.0001)}
	b := Route{Name: "b", Track: shifted(equatorTrack(30, 0.0001), 100.0/kMetersPerDeg)}

	opts := DefaultOptions()
	opts.Classifier.ThresholdMeters = 150
	c := compareOrDie(t, a, b, opts)

	ss := c.SeparationA
	if ss.MatchedPoints != 30 {
		t.Errorf("matched points: got %d, expected 30", ss.MatchedPoints)
	}
	for label, v := range map[string]float64{
		"min": ss.MinMeters, "median": ss.MedianMeters, "max": ss.MaxMeters,
	} {
		if math.Abs(v-100) > 0.5 {
			t.Errorf("%s separation: got %.2fm, expected 100m", label, v)
		}
	}

	if got := c.Summarize().SeparationA; got != ss {
		t.Errorf("summary separation: got %+v, expected %+v", got, ss)
	}

	// Identical tracks sit at zero separation.
	same := compareOrDie(t, Route{Track: loadTrack(t, runA)}, Route{Track: loadTrack(t, runA)},
		DefaultOptions())
	ss = same.SeparationA
	if ss.MatchedPoints != 16 || ss.MinMeters != 0 || ss.MedianMeters != 0 || ss.MaxMeters != 0 {
		t.Errorf("identical separation: got %+v", ss)
	}

	// Disjoint tracks match nothing.
	far := compareOrDie(t, Route{Track: equatorTrack(21, 0.001)},
		Route{Track: shifted(equatorTrack(21, 0.001), 0.1)}, DefaultOptions())
	if far.SeparationA.MatchedPoints != 0 || far.SeparationA.MaxMeters != 0 {
		t.Errorf("disjoint separation: got %+v", far.SeparationA)
	}
}

func TestCompareWithoutOffset(t *testing.T) {
	a := Route{Name: "a", Track: loadTrack(t, runA)}
	b := Route{Name: "b", Track: loadTrack(t, runA)}

	opts := DefaultOptions()
	opts.ApplyOffset = false
	c := compareOrDie(t, a, b, opts)

	if !c.Overlapping {
		t.Errorf("overlap should still be detected")
	}
	for i := range c.A.Track {
		if !c.OffsetA[i].Latlong.Equal(c.A.Track[i].Latlong) {
			t.Fatalf("offset applied despite ApplyOffset=false")
		}
	}
}

func TestCompareDegenerate(t *testing.T) {
	full := Route{Name: "full", Track: loadTrack(t, runA)}
	for _,empty := range []Route{
		{Name: "empty"},
		{Name: "single", Track: equatorTrack(1, 0)},
	} {
		c := compareOrDie(t, empty, full, DefaultOptions())
		if len(c.SegmentsA) != 0 {
			t.Errorf("%s vs full: A segments %v", empty.Name, c.SegmentsA)
		}
		if len(c.SegmentsB) != 1 || c.SegmentsB[0].Class != ClassDifferent {
			t.Errorf("%s vs full: B should be one different segment, got %v", empty.Name, c.SegmentsB)
		}
		if len(c.KilometerMarkersA) != 0 {
			t.Errorf("%s vs full: unexpected markers", empty.Name)
		}
		if c.Overlapping {
			t.Errorf("%s vs full: flagged overlapping", empty.Name)
		}
	}

	c := compareOrDie(t, Route{}, Route{}, DefaultOptions())
	if len(c.SegmentsA) != 0 || len(c.SegmentsB) != 0 || len(c.MergedBoxes) != 0 {
		t.Errorf("empty vs empty: got %v / %v / %v", c.SegmentsA, c.SegmentsB, c.MergedBoxes)
	}
}

func TestCompareInvalidPointsFiltered(t *testing.T) {
	tr := loadTrack(t, runA)
	tr[3].Lat = math.NaN()
	tr[7].Long = 999

	a := Route{Name: "dirty", Track: tr}
	b := Route{Name: "clean", Track: loadTrack(t, runA)}
	c := compareOrDie(t, a, b, DefaultOptions())

	if len(c.A.Track) != 14 {
		t.Errorf("sanitize: kept %d points, expected 14", len(c.A.Track))
	}
	// The surviving points still sit on B, so everything stays common.
	for _,s := range c.SegmentsA {
		if s.Class != ClassCommon {
			t.Errorf("dirty-but-matching track: segment %s", s)
		}
	}
}

func TestCompareValidation(t *testing.T) {
	a := Route{Name: "a", Track: equatorTrack(5, 0.001)}

	opts := DefaultOptions()
	opts.Classifier.ThresholdMeters = -1
	if _, err := Compare(context.Background(), a, a, opts); err == nil {
		t.Errorf("negative threshold should fail")
	}

	opts = DefaultOptions()
	opts.BoxMerge.PaddingFraction = -0.5
	if _, err := Compare(context.Background(), a, a, opts); err == nil {
		t.Errorf("negative padding should fail")
	}
}

func TestCompareCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := Route{Name: "a", Track: equatorTrack(50, 0.001)}
	if _, err := Compare(ctx, a, a, DefaultOptions()); err == nil {
		t.Errorf("cancelled compare should return an error")
	}
}
