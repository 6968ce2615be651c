package routes

import(
	"fmt"

	"github.com/thomasaedk/routes/geo"
)

const(
	// Slack when deciding whether a pair of points reaches the next integer
	// kilometer, so a track that is exactly N km long (bar float dust) still
	// gets its Nth marker. In KM, so this is about a micrometer.
	kKilometerEpsilon = 1e-9

	// Direction arrows appear every max(kArrowMinStride, N/kArrowMaxCount)
	// points, capping a busy track at about twenty arrows.
	kArrowMinStride = 10
	kArrowMaxCount  = 20
)

// KilometerMarker flags where the along-track distance passes a whole
// kilometer.
type KilometerMarker struct {
	geo.Latlong
	Km int `json:"km"`
}

func (m KilometerMarker)String() string { return fmt.Sprintf("%dKM @ %s", m.Km, m.Latlong) }

// DirectionArrow is a periodic along-track position plus the direction of
// travel there, for rendering little arrowheads.
type DirectionArrow struct {
	geo.Latlong
	BearingDeg float64 `json:"bearing"`
}

func (a DirectionArrow)String() string { return fmt.Sprintf("%.0fdeg @ %s", a.BearingDeg, a.Latlong) }

// KilometerMarkers interpolates a marker wherever the cumulative distance
// crosses an integer kilometer. A single pair of far-apart points can yield
// several markers; no boundary is ever skipped or claimed twice.
func (t Track)KilometerMarkers() []KilometerMarker {
	out := []KilometerMarker{}
	cumKM := 0.0
	next := 1
	for i := 1; i < len(t); i++ {
		d := t[i-1].DistKM(t[i].Latlong)
		if d == 0 {
			continue
		}
		end := cumKM + d
		for float64(next) <= end+kKilometerEpsilon {
			ratio := (float64(next) - cumKM) / d
			if ratio < 0 { ratio = 0 }
			if ratio > 1 { ratio = 1 }
			out = append(out, KilometerMarker{
				Latlong: t[i-1].Latlong.InterpolateTo(t[i].Latlong, ratio),
				Km:      next,
			})
			next++
		}
		cumKM = end
	}
	return out
}

// DirectionArrows emits an arrow every stride points, pointing from the
// previous point to the arrow's own position. Short tracks get none.
func (t Track)DirectionArrows() []DirectionArrow {
	out := []DirectionArrow{}
	stride := len(t) / kArrowMaxCount
	if stride < kArrowMinStride { stride = kArrowMinStride }
	for i := stride; i < len(t); i += stride {
		out = append(out, DirectionArrow{
			Latlong:    t[i].Latlong,
			BearingDeg: t[i-1].BearingTowards(t[i].Latlong).Degrees(),
		})
	}
	return out
}
