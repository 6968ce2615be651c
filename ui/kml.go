package ui

import(
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/twpayne/go-kml/v2"

	"github.com/thomasaedk/routes"
	"github.com/thomasaedk/routes/geo"
)

// {{{ WriteKML

// WriteKML renders a comparison as a KML document: shared styles up top,
// one folder per kind of thing, boxes as unfilled polygons. Load it into
// Google Earth and the layers toggle independently.
func WriteKML(w io.Writer, c *routes.Comparison) error {
	nameA,nameB := c.A.Name, c.B.Name
	if nameA == "" { nameA = "Route A" }
	if nameB == "" { nameB = "Route B" }

	colorA,colorB := c.A.Color, c.B.Color
	if colorA == "" { colorA = KColorRouteA }
	if colorB == "" { colorB = KColorRouteB }

	doc := kml.Document(
		kml.Name(fmt.Sprintf("%s vs %s", nameA, nameB)),
		kml.SharedStyle("common",
			kml.LineStyle(kml.Color(hexColor(KColorCommon)), kml.Width(4))),
		kml.SharedStyle("routeA",
			kml.LineStyle(kml.Color(hexColor(colorA)), kml.Width(4))),
		kml.SharedStyle("routeB",
			kml.LineStyle(kml.Color(hexColor(colorB)), kml.Width(4))),
		kml.SharedStyle("box",
			kml.LineStyle(kml.Color(hexColor(KColorBox)), kml.Width(2)),
			kml.PolyStyle(kml.Fill(false))),
	)

	doc.Add(segmentFolder("Common", "#common", c.CommonSegments()))
	doc.Add(segmentFolder(nameA+" only", "#routeA", c.DifferenceSegmentsA()))
	doc.Add(segmentFolder(nameB+" only", "#routeB", c.DifferenceSegmentsB()))
	doc.Add(markerFolder(nameA+" km markers", c.KilometerMarkersA))
	doc.Add(markerFolder(nameB+" km markers", c.KilometerMarkersB))
	doc.Add(arrowFolder(nameA+" direction", colorA, c.DirectionArrowsA))
	doc.Add(arrowFolder(nameB+" direction", colorB, c.DirectionArrowsB))
	doc.Add(boxFolder(c.MergedBoxes))

	return kml.KML(doc).WriteIndent(w, "", "  ")
}

// }}}
// {{{ segmentFolder

func segmentFolder(name, styleURL string, segs []routes.Segment) *kml.CompoundElement {
	f := kml.Folder(kml.Name(name))
	for i,seg := range segs {
		f = f.Add(kml.Placemark(
			kml.Name(fmt.Sprintf("%s %d", name, i+1)),
			kml.StyleURL(styleURL),
			kml.LineString(kml.Tessellate(true), trackCoordinates(seg.Points)),
		))
	}
	return f
}

func trackCoordinates(t routes.Track) kml.Element {
	coords := make([]kml.Coordinate, len(t))
	for i,tp := range t {
		coords[i] = kml.Coordinate{Lon: tp.Long, Lat: tp.Lat, Alt: tp.ElevationMeters}
	}
	return kml.Coordinates(coords...)
}

// }}}
// {{{ markerFolder

func markerFolder(name string, markers []routes.KilometerMarker) *kml.CompoundElement {
	f := kml.Folder(kml.Name(name))
	for _,km := range markers {
		f = f.Add(kml.Placemark(
			kml.Name(strconv.Itoa(km.Km)+" km"),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: km.Long, Lat: km.Lat})),
		))
	}
	return f
}

// }}}
// {{{ arrowFolder

func arrowFolder(name, lineColor string, arrows []routes.DirectionArrow) *kml.CompoundElement {
	f := kml.Folder(kml.Name(name))
	for _,da := range arrows {
		f = f.Add(kml.Placemark(
			kml.Style(kml.IconStyle(
				kml.Color(hexColor(lineColor)),
				kml.Heading(da.BearingDeg),
				kml.Icon(kml.Href("http://maps.google.com/mapfiles/kml/shapes/arrow.png")),
			)),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: da.Long, Lat: da.Lat})),
		))
	}
	return f
}

// }}}
// {{{ boxFolder

func boxFolder(boxes []geo.LatlongBox) *kml.CompoundElement {
	f := kml.Folder(kml.Name("Difference areas"))
	for i,box := range boxes {
		ring := []kml.Coordinate{
			{Lon: box.SW.Long, Lat: box.SW.Lat},
			{Lon: box.NE.Long, Lat: box.SW.Lat},
			{Lon: box.NE.Long, Lat: box.NE.Lat},
			{Lon: box.SW.Long, Lat: box.NE.Lat},
			{Lon: box.SW.Long, Lat: box.SW.Lat},
		}
		f = f.Add(kml.Placemark(
			kml.Name(fmt.Sprintf("Area %d", i+1)),
			kml.StyleURL("#box"),
			kml.Polygon(kml.OuterBoundaryIs(kml.LinearRing(kml.Coordinates(ring...)))),
		))
	}
	return f
}

// }}}
// {{{ hexColor

// hexColor turns "#rrggbb" into an opaque color; bad input comes out black.
func hexColor(s string) color.Color {
	if len(s) == 7 && s[0] == '#' {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
		}
	}
	return color.RGBA{A: 0xff}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
