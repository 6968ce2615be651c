package routes

import (
	"fmt"
	"time"

	"github.com/thomasaedk/routes/geo"
)

// TrackPoint is a single recorded position along a route.
type TrackPoint struct {
	geo.Latlong // Embedded type, so we can call all the geo stuff directly on trackpoints

	ElevationMeters float64   `json:"elevation,omitempty"`
	TimestampUTC    time.Time `json:"time,omitempty"` // Zero when the source carried no times
}

func (tp TrackPoint)String() string {
	str := fmt.Sprintf("%s %.0fm", tp.Latlong, tp.ElevationMeters)
	if !tp.TimestampUTC.IsZero() {
		str += " @ " + tp.TimestampUTC.Format("15:04:05")
	}
	return str
}

func (from TrackPoint)InterpolateTo(to TrackPoint, ratio float64) TrackPoint {
	return TrackPoint{
		Latlong:         from.Latlong.InterpolateTo(to.Latlong, ratio),
		ElevationMeters: interpolateFloat64(from.ElevationMeters, to.ElevationMeters, ratio),
		TimestampUTC:    interpolateTime(from.TimestampUTC, to.TimestampUTC, ratio),
	}
}

func interpolateFloat64(from, to, ratio float64) float64 {
	return from + (to-from)*ratio
}

func interpolateTime(from, to time.Time, ratio float64) time.Time {
	if from.IsZero() || to.IsZero() { return time.Time{} }
	d1 := to.Sub(from)
	nanosToAdd := ratio * float64(d1.Nanoseconds())
	d2 := time.Nanosecond * time.Duration(nanosToAdd)
	d3 := time.Second * time.Duration(d2.Seconds()) // Round down to second precision
	return from.Add(d3)
}
