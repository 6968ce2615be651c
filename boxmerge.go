package routes

import(
	"fmt"

	"github.com/thomasaedk/routes/geo"
)

const(
	// Rough degrees-per-meter at the equator, used to turn the fixed padding
	// distance into degrees on both axes.
	kDegreesPerMeter = 1.0 / 111000.0
)

type BoxMergeConfig struct {
	PaddingFraction    float64 // padding as a fraction of a box's own span
	FixedPaddingMeters float64 // floor on the padding, as a ground distance
	ToleranceDeg       float64 // slack when testing two boxes for overlap
}

func DefaultBoxMergeConfig() BoxMergeConfig {
	return BoxMergeConfig{
		PaddingFraction:    0.40,
		FixedPaddingMeters: 50,
		ToleranceDeg:       1e-4,
	}
}

func (bc BoxMergeConfig)Validate() error {
	if bc.PaddingFraction < 0 {
		return fmt.Errorf("boxmerge: padding fraction must not be negative, had %f", bc.PaddingFraction)
	}
	if bc.FixedPaddingMeters < 0 {
		return fmt.Errorf("boxmerge: fixed padding must not be negative, had %f", bc.FixedPaddingMeters)
	}
	if bc.ToleranceDeg < 0 {
		return fmt.Errorf("boxmerge: tolerance must not be negative, had %f", bc.ToleranceDeg)
	}
	return nil
}

// PaddedBox is the tight bounding box of the segment's points, grown per
// axis by the larger of the fractional and the fixed padding. The fixed
// floor keeps a point-like difference region visible as a box at all.
func (s Segment)PaddedBox(bc BoxMergeConfig) geo.LatlongBox {
	box := s.Points.BoundingBox()
	fixedDeg := bc.FixedPaddingMeters * kDegreesPerMeter

	latPad := bc.PaddingFraction * box.LatSpan()
	if latPad < fixedDeg { latPad = fixedDeg }
	longPad := bc.PaddingFraction * box.LongSpan()
	if longPad < fixedDeg { longPad = fixedDeg }

	return box.PadBy(latPad, longPad)
}

// DifferenceBoxes builds one padded box per Different segment, then merges.
func DifferenceBoxes(segs []Segment, bc BoxMergeConfig) []geo.LatlongBox {
	boxes := []geo.LatlongBox{}
	for _,s := range SegmentsOfClass(segs, ClassDifferent) {
		if len(s.Points) == 0 { continue }
		boxes = append(boxes, s.PaddedBox(bc))
	}
	return MergeBoxes(boxes, bc.ToleranceDeg)
}

// {{{ MergeBoxes

// MergeBoxes unions overlapping boxes until no two remain within tolDeg of
// touching. Merging two boxes can push the union into a third, so a single
// pass isn't enough; we rescan from scratch after every merge and stop only
// when a full pass finds nothing. The result covers every input box, and is
// the same set whatever order the inputs arrive in.
//
// Merged pairs are parked in the arena with a tombstone rather than spliced
// out, so index bookkeeping stays trivial.
func MergeBoxes(in []geo.LatlongBox, tolDeg float64) []geo.LatlongBox {
	arena := make([]geo.LatlongBox, len(in))
	copy(arena, in)
	dead := make([]bool, len(in))

	for {
		merged := false
		for i := 0; i < len(arena) && !merged; i++ {
			if dead[i] { continue }
			for j := i + 1; j < len(arena); j++ {
				if dead[j] { continue }
				if !arena[i].OverlapsWith(arena[j], tolDeg) { continue }

				arena = append(arena, arena[i].Union(arena[j]))
				dead = append(dead, false)
				dead[i], dead[j] = true, true
				merged = true
				break
			}
		}
		if !merged { break }
	}

	out := []geo.LatlongBox{}
	for i,box := range arena {
		if !dead[i] {
			out = append(out, box)
		}
	}
	return out
}

// }}}
