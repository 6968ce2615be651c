// Package ui packages comparison results for the rendering layer: a JSON
// bundle for the web map, JS-literal shape maps for templated pages, and a
// KML document for Google Earth. Nothing in here changes the geometry; it
// only reshapes it.
package ui

import(
	"encoding/json"

	"github.com/thomasaedk/routes"
	"github.com/thomasaedk/routes/geo"
)

// RenderBundle is the wire payload the map frontend consumes. Field names
// are part of the frontend contract; don't rename them.
type RenderBundle struct {
	CommonSegments      [][]geo.Latlong `json:"commonSegments"`
	DifferenceSegmentsA [][]geo.Latlong `json:"differenceSegmentsA"`
	DifferenceSegmentsB [][]geo.Latlong `json:"differenceSegmentsB"`

	KilometerMarkersA []routes.KilometerMarker `json:"kilometerMarkersA"`
	KilometerMarkersB []routes.KilometerMarker `json:"kilometerMarkersB"`
	DirectionArrowsA  []routes.DirectionArrow  `json:"directionArrowsA"`
	DirectionArrowsB  []routes.DirectionArrow  `json:"directionArrowsB"`

	MergedBoxes []geo.LatlongBox `json:"mergedBoxes"`

	OffsetPointsA []geo.Latlong `json:"offsetPointsA"`
	OffsetPointsB []geo.Latlong `json:"offsetPointsB"`
	Overlapping   bool          `json:"overlapping"`
}

func NewRenderBundle(c *routes.Comparison) *RenderBundle {
	return &RenderBundle{
		CommonSegments:      segmentPaths(c.CommonSegments()),
		DifferenceSegmentsA: segmentPaths(c.DifferenceSegmentsA()),
		DifferenceSegmentsB: segmentPaths(c.DifferenceSegmentsB()),
		KilometerMarkersA:   c.KilometerMarkersA,
		KilometerMarkersB:   c.KilometerMarkersB,
		DirectionArrowsA:    c.DirectionArrowsA,
		DirectionArrowsB:    c.DirectionArrowsB,
		MergedBoxes:         c.MergedBoxes,
		OffsetPointsA:       c.OffsetA.Latlongs(),
		OffsetPointsB:       c.OffsetB.Latlongs(),
		Overlapping:         c.Overlapping,
	}
}

func (rb *RenderBundle)ToJSON() ([]byte, error) {
	return json.Marshal(rb)
}

func segmentPaths(segs []routes.Segment) [][]geo.Latlong {
	out := [][]geo.Latlong{}
	for _,s := range segs {
		out = append(out, s.Points.Latlongs())
	}
	return out
}

// CompactBundle is the same payload with the paths squeezed through the
// encoded-polyline algorithm, for bandwidth-sensitive callers. Markers,
// arrows and boxes are small and stay as plain coordinates.
type CompactBundle struct {
	CommonSegments      []string `json:"commonSegments"`
	DifferenceSegmentsA []string `json:"differenceSegmentsA"`
	DifferenceSegmentsB []string `json:"differenceSegmentsB"`

	KilometerMarkersA []routes.KilometerMarker `json:"kilometerMarkersA"`
	KilometerMarkersB []routes.KilometerMarker `json:"kilometerMarkersB"`
	DirectionArrowsA  []routes.DirectionArrow  `json:"directionArrowsA"`
	DirectionArrowsB  []routes.DirectionArrow  `json:"directionArrowsB"`

	MergedBoxes []geo.LatlongBox `json:"mergedBoxes"`

	OffsetPointsA string `json:"offsetPointsA"`
	OffsetPointsB string `json:"offsetPointsB"`
	Overlapping   bool   `json:"overlapping"`
}

func (rb *RenderBundle)Compact() *CompactBundle {
	return &CompactBundle{
		CommonSegments:      encodePaths(rb.CommonSegments),
		DifferenceSegmentsA: encodePaths(rb.DifferenceSegmentsA),
		DifferenceSegmentsB: encodePaths(rb.DifferenceSegmentsB),
		KilometerMarkersA:   rb.KilometerMarkersA,
		KilometerMarkersB:   rb.KilometerMarkersB,
		DirectionArrowsA:    rb.DirectionArrowsA,
		DirectionArrowsB:    rb.DirectionArrowsB,
		MergedBoxes:         rb.MergedBoxes,
		OffsetPointsA:       EncodePath(rb.OffsetPointsA),
		OffsetPointsB:       EncodePath(rb.OffsetPointsB),
		Overlapping:         rb.Overlapping,
	}
}

func (cb *CompactBundle)ToJSON() ([]byte, error) {
	return json.Marshal(cb)
}

func encodePaths(paths [][]geo.Latlong) []string {
	out := []string{}
	for _,path := range paths {
		out = append(out, EncodePath(path))
	}
	return out
}
