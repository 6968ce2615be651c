package routes

import(
	"context"
	"fmt"
	"math"

	"github.com/thomasaedk/routes/geo"
)

const(
	// Weighted distance is raw/(0.3+0.7c), where c in [0,1] is direction
	// compatibility. A segment running dead against us looks ~3.3x further
	// away than an aligned one at the same raw distance.
	kDirectionWeightFloor = 0.3
	kDirectionWeightSpan  = 0.7

	// Segments further than this multiple of the threshold are skipped
	// before any bearing math happens.
	kPrefilterFactor = 2.0

	// How often the sampling loop looks at the context.
	kCancelCheckEvery = 256
)

// Classification says whether a point runs along the other track or not.
type Classification int

const(
	ClassCommon Classification = iota
	ClassDifferent
)

func (c Classification)String() string {
	if c == ClassCommon { return "Common" }
	return "Different"
}

// ClassifiedPoint is one sampled trackpoint plus the verdict against the
// other track. DistMeters is the raw distance to the nearest compatible
// segment, or +Inf when nothing survived filtering.
type ClassifiedPoint struct {
	TrackPoint
	Index      int // index into the sanitized source track
	Class      Classification
	DistMeters float64
}

func (cp ClassifiedPoint)String() string {
	return fmt.Sprintf("[%d] %s %s (%.0fm)", cp.Index, cp.Latlong, cp.Class, cp.DistMeters)
}

type ClassifierConfig struct {
	ThresholdMeters float64 // points within this raw distance of the other track are Common
	LookBack        int     // how many points back we reach for a local bearing
	MaxSamplePoints int     // caps the number of points classified per track
}

func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		ThresholdMeters: KDefaultThresholdMeters,
		LookBack:        3,
		MaxSamplePoints: 1500,
	}
}

func (cc ClassifierConfig)Validate() error {
	if cc.ThresholdMeters <= 0 {
		return fmt.Errorf("classifier: threshold must be positive, had %f", cc.ThresholdMeters)
	}
	if cc.LookBack < 1 {
		return fmt.Errorf("classifier: lookback must be at least 1, had %d", cc.LookBack)
	}
	if cc.MaxSamplePoints < 1 {
		return fmt.Errorf("classifier: max sample points must be at least 1, had %d", cc.MaxSamplePoints)
	}
	return nil
}

// {{{ t.ClassifyAgainst

// ClassifyAgainst labels a sampled subset of t's points as Common or
// Different, depending on how close each one runs to some segment of the
// other track that heads the same way. Proximity alone is not enough: an
// out-and-back along the same street should classify the outbound leg
// against the other track's outbound leg, not whichever leg happens to lie
// a meter closer. So candidate segments are selected by distance weighted
// with direction compatibility, and the winner's raw distance decides.
//
// The other track's segments and bearings are computed once up front;
// the main loop is O(sampled(t) x len(other)).
func (t Track)ClassifyAgainst(ctx context.Context, other Track, cc ClassifierConfig) ([]ClassifiedPoint, error) {
	if err := cc.Validate(); err != nil { return nil, err }

	segs := other.AsLines()
	bearings := make([]geo.Bearing, len(segs))
	defined := make([]bool, len(segs))
	for j := range segs {
		bearings[j], defined[j] = other.BearingAt(j, cc.LookBack)
	}

	out := []ClassifiedPoint{}
	for n,i := range t.SampledIndices(cc.MaxSamplePoints) {
		if n%kCancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil { return nil, err }
		}

		cp := ClassifiedPoint{
			TrackPoint: t[i],
			Index:      i,
			Class:      ClassDifferent,
			DistMeters: math.Inf(1),
		}

		selfBearing, selfDefined := t.BearingAt(i, cc.LookBack)

		bestWeighted := math.Inf(1)
		for j,seg := range segs {
			raw := t[i].DistMetersToLine(seg)
			if raw > cc.ThresholdMeters*kPrefilterFactor { continue }

			compat := 1.0 // undefined bearings don't penalize
			if selfDefined && defined[j] {
				compat = 1.0 - selfBearing.AbsDiff(bearings[j])/math.Pi
			}

			if w := raw / (kDirectionWeightFloor + kDirectionWeightSpan*compat); w < bestWeighted {
				bestWeighted = w
				cp.DistMeters = raw // the verdict uses the winner's raw distance
			}
		}

		if cp.DistMeters <= cc.ThresholdMeters { cp.Class = ClassCommon }
		out = append(out, cp)
	}

	return out, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
