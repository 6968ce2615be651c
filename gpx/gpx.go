// Package gpx reads and writes routes as GPX documents, so the comparison
// engine itself never touches XML.
package gpx

import (
	"fmt"
	"path/filepath"
	"strings"

	gpxgo "github.com/tkrajina/gpxgo/gpx"

	"github.com/thomasaedk/routes"
)

// Parse decodes a GPX document into a single route. Multi-track and
// multi-segment files are flattened in document order; uploads here are one
// recorded activity per file, so the flattening is harmless.
func Parse(data []byte) (routes.Route, error) {
	doc, err := gpxgo.ParseBytes(data)
	if err != nil {
		return routes.Route{}, fmt.Errorf("gpx parse: %w", err)
	}
	return fromDoc(doc, ""), nil
}

func ParseFile(filename string) (routes.Route, error) {
	doc, err := gpxgo.ParseFile(filename)
	if err != nil {
		return routes.Route{}, fmt.Errorf("gpx parse %s: %w", filename, err)
	}
	fallback := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return fromDoc(doc, fallback), nil
}

func fromDoc(doc *gpxgo.GPX, fallbackName string) routes.Route {
	r := routes.Route{Name: doc.Name}
	if r.Name == "" {
		for _,trk := range doc.Tracks {
			if trk.Name != "" {
				r.Name = trk.Name
				break
			}
		}
	}
	if r.Name == "" { r.Name = fallbackName }

	for _,trk := range doc.Tracks {
		for _,seg := range trk.Segments {
			for _,p := range seg.Points {
				tp := routes.TrackPoint{TimestampUTC: p.Timestamp}
				tp.Lat, tp.Long = p.Latitude, p.Longitude
				if p.Elevation.NotNull() {
					tp.ElevationMeters = p.Elevation.Value()
				}
				r.Track = append(r.Track, tp)
			}
		}
	}
	return r
}

// Write renders the route as a GPX 1.1 document, one track with one segment.
func Write(r routes.Route) ([]byte, error) {
	seg := gpxgo.GPXTrackSegment{}
	for _,tp := range r.Track {
		p := gpxgo.GPXPoint{Timestamp: tp.TimestampUTC}
		p.Latitude, p.Longitude = tp.Lat, tp.Long
		p.Elevation = *gpxgo.NewNullableFloat64(tp.ElevationMeters)
		seg.Points = append(seg.Points, p)
	}

	doc := &gpxgo.GPX{
		Version: "1.1",
		Creator: "routes",
		Name:    r.Name,
		Tracks:  []gpxgo.GPXTrack{{Name: r.Name, Segments: []gpxgo.GPXTrackSegment{seg}}},
	}
	return gpxgo.ToXml(doc, gpxgo.ToXmlParams{Version: "1.1", Indent: true})
}
