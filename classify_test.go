package routes

import (
	"context"
	"math"
	"testing"
)

func classifyOrDie(t *testing.T, track, other Track, cc ClassifierConfig) []ClassifiedPoint {
	cps, err := track.ClassifyAgainst(context.Background(), other, cc)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	return cps
}

func countClass(cps []ClassifiedPoint, class Classification) int {
	n := 0
	for _,cp := range cps {
		if cp.Class == class { n++ }
	}
	return n
}

func TestClassifySelf(t *testing.T) {
	tr := loadTrack(t, runA)
	cps := classifyOrDie(t, tr, tr, DefaultClassifierConfig())

	if len(cps) != len(tr) {
		t.Fatalf("self: %d classified points for %d inputs", len(cps), len(tr))
	}
	for _,cp := range cps {
		if cp.Class != ClassCommon {
			t.Errorf("self: point %s not common", cp)
		}
		if cp.DistMeters != 0 {
			t.Errorf("self: point %s should be at distance 0", cp)
		}
	}
}

func TestClassifyDisjoint(t *testing.T) {
	a := equatorTrack(10, 0.001)
	b := shifted(a, 0.1) // about 11KM north

	for _,cp := range classifyOrDie(t, a, b, DefaultClassifierConfig()) {
		if cp.Class != ClassDifferent {
			t.Errorf("disjoint: point %s not different", cp)
		}
		if !math.IsInf(cp.DistMeters, 1) {
			t.Errorf("disjoint: point %s should have infinite distance", cp)
		}
	}
}

// Two parallel streets 100m apart: invisible to each other at a 40m
// threshold, the same route at 150m.
func TestClassifyParallelStreets(t *testing.T) {
	a := equatorTrack(21, 0.001)
	b := shifted(a, 100.0/kMetersPerDeg)

	cc := DefaultClassifierConfig()
	for _,cp := range classifyOrDie(t, a, b, cc) {
		if cp.Class != ClassDifferent {
			t.Errorf("100m apart at 40m threshold: %s not different", cp)
		}
	}
	for _,cp := range classifyOrDie(t, b, a, cc) {
		if cp.Class != ClassDifferent {
			t.Errorf("100m apart at 40m threshold: %s not different", cp)
		}
	}

	cc.ThresholdMeters = 150
	for _,cp := range classifyOrDie(t, a, b, cc) {
		if cp.Class != ClassCommon {
			t.Errorf("100m apart at 150m threshold: %s not common", cp)
		}
		if math.Abs(cp.DistMeters-100) > 0.5 {
			t.Errorf("100m apart: %s reports %.2fm", cp, cp.DistMeters)
		}
	}
	for _,cp := range classifyOrDie(t, b, a, cc) {
		if cp.Class != ClassCommon {
			t.Errorf("100m apart at 150m threshold: %s not common", cp)
		}
	}
}

// An eastbound track between two legs of the other route: a westbound leg
// 25m away and an eastbound leg 30m away. Direction weighting must pick the
// slightly-further aligned leg, and report its raw distance.
func TestClassifyPrefersAlignedLeg(t *testing.T) {
	a := equatorTrack(11, 0.001) // eastbound, lon 0 .. 0.010

	east := shifted(equatorTrack(21, 0.001), 30.0/kMetersPerDeg)
	for i := range east {
		east[i].Long -= 0.005 // lon -0.005 .. 0.015
	}
	west := shifted(equatorTrack(22, 0.001), -25.0/kMetersPerDeg)
	for i := range west {
		west[i].Long -= 0.005 // lon -0.005 .. 0.016
	}
	for i,j := 0,len(west)-1; i < j; i,j = i+1,j-1 {
		west[i], west[j] = west[j], west[i] // now westbound
	}
	b := append(append(Track{}, east...), west...)

	cc := DefaultClassifierConfig()
	for _,cp := range classifyOrDie(t, a, b, cc) {
		if cp.Class != ClassCommon {
			t.Errorf("aligned leg at 30m: %s not common", cp)
		}
		if math.Abs(cp.DistMeters-30) > 0.5 {
			t.Errorf("aligned leg: %s picked distance %.2fm, expected ~30m", cp, cp.DistMeters)
		}
	}
}

// With only an anti-parallel leg on offer, the raw distance still decides
// the verdict; the direction weighting is a selection bias, not a veto.
func TestClassifyAntiParallelStillCommon(t *testing.T) {
	a := equatorTrack(11, 0.001)
	west := shifted(equatorTrack(11, 0.001), 25.0/kMetersPerDeg)
	for i,j := 0,len(west)-1; i < j; i,j = i+1,j-1 {
		west[i], west[j] = west[j], west[i]
	}

	for _,cp := range classifyOrDie(t, a, west, DefaultClassifierConfig()) {
		if cp.Class != ClassCommon {
			t.Errorf("anti-parallel at 25m: %s not common", cp)
		}
		if math.Abs(cp.DistMeters-25) > 0.5 {
			t.Errorf("anti-parallel: %s reports %.2fm, expected ~25m", cp, cp.DistMeters)
		}
	}
}

func TestClassifyAgainstShortTrack(t *testing.T) {
	a := equatorTrack(5, 0.001)

	for _,other := range []Track{{}, a[:1]} {
		cps := classifyOrDie(t, a, other, DefaultClassifierConfig())
		if len(cps) != len(a) {
			t.Fatalf("short other: got %d points", len(cps))
		}
		for _,cp := range cps {
			if cp.Class != ClassDifferent || !math.IsInf(cp.DistMeters, 1) {
				t.Errorf("short other: %s should be different at +Inf", cp)
			}
		}
	}
}

func TestClassifySampling(t *testing.T) {
	a := equatorTrack(3000, 0.00001)
	cps := classifyOrDie(t, a, a, DefaultClassifierConfig())

	if len(cps) != 1501 {
		t.Errorf("sampling: got %d classified points, expected 1501", len(cps))
	}
	if last := cps[len(cps)-1]; last.Index != len(a)-1 {
		t.Errorf("sampling: final classified index %d, expected %d", last.Index, len(a)-1)
	}
}

func TestClassifierConfigValidate(t *testing.T) {
	good := DefaultClassifierConfig()
	if err := good.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	bad := []ClassifierConfig{
		{ThresholdMeters: 0, LookBack: 3, MaxSamplePoints: 1500},
		{ThresholdMeters: -40, LookBack: 3, MaxSamplePoints: 1500},
		{ThresholdMeters: 40, LookBack: 0, MaxSamplePoints: 1500},
		{ThresholdMeters: 40, LookBack: 3, MaxSamplePoints: 0},
	}
	for _,cc := range bad {
		if err := cc.Validate(); err == nil {
			t.Errorf("config %+v should not validate", cc)
		}
	}
}

func TestClassifyCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := equatorTrack(100, 0.0001)
	if _, err := a.ClassifyAgainst(ctx, a, DefaultClassifierConfig()); err == nil {
		t.Errorf("cancelled context should abort classification")
	}
}
