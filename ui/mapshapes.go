package ui

// Shape soup for the javascript map: plain structs the template layer can
// iterate over, plus emitters that render them as JS literals.

import(
	"fmt"
	"html/template"
	"strings"

	"github.com/thomasaedk/routes"
	"github.com/thomasaedk/routes/geo"
)

var(
	KColorCommon = "#2e8b57"
	KColorRouteA = "#dd0000"
	KColorRouteB = "#0033cc"
	KColorBox    = "#ff9900"
)

// {{{ MapLine{}, MapPoint{}, MapIcon{}

type MapLine struct {
	Start geo.Latlong `json:"s"`
	End   geo.Latlong `json:"e"`

	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

func (ml MapLine)ToJSStr() string {
	if ml.Color == "" { ml.Color = "#000000" }
	if ml.Opacity == 0.0 { ml.Opacity = 1.0 }
	return fmt.Sprintf("s:{lat:%f,lng:%f}, e:{lat:%f,lng:%f}, color:%q, opacity:%.2f",
		ml.Start.Lat, ml.Start.Long, ml.End.Lat, ml.End.Long, ml.Color, ml.Opacity)
}

type MapPoint struct {
	Pos geo.Latlong

	Icon string  // The name of the .png, relative to /static/
	Text string
}

func (mp MapPoint)ToJSStr() string {
	if mp.Icon == "" { mp.Icon = "dot" }
	return fmt.Sprintf("pos:{lat:%f,lng:%f}, icon:%q, info:%q",
		mp.Pos.Lat, mp.Pos.Long, mp.Icon, mp.Text)
}

type MapIcon struct {
	Pos geo.Latlong

	RotationDeg float64
	Color       string
	Text        string
}

func (mi MapIcon)ToJSStr() string {
	if mi.Color == "" { mi.Color = "#000000" }
	return fmt.Sprintf("pos:{lat:%f,lng:%f}, rot:%.0f, color:%q, info:%q",
		mi.Pos.Lat, mi.Pos.Long, mi.RotationDeg, mi.Color, mi.Text)
}

// }}}
// {{{ MapShapes{}

type MapShapes struct {
	Lines []MapLine
	Points []MapPoint
	Icons []MapIcon
}

func NewMapShapes() *MapShapes {
	ms := MapShapes{
		Lines: []MapLine{},
		Points: []MapPoint{},
		Icons: []MapIcon{},
	}
	return &ms
}

func (ms *MapShapes)AddLine(ml MapLine) { ms.Lines = append(ms.Lines, ml) }
func (ms *MapShapes)AddPoint(mp MapPoint) { ms.Points = append(ms.Points, mp) }
func (ms *MapShapes)AddIcon(mi MapIcon) { ms.Icons = append(ms.Icons, mi) }

func (ms1 *MapShapes)Add(ms2 *MapShapes) {
	ms1.Lines = append(ms1.Lines, ms2.Lines...)
	ms1.Points = append(ms1.Points, ms2.Points...)
	ms1.Icons = append(ms1.Icons, ms2.Icons...)
}

// }}}

// {{{ ms.LinesToJSMap, ms.PointsToJSMap, ms.IconsToJSMap

// Emit maps-of-objects, in the form the map javascript expects.

func (ms *MapShapes)LinesToJSMap() template.JS {
	str := "{\n"
	for i,ml := range ms.Lines {
		str += fmt.Sprintf("    %d: {%s},\n", i, ml.ToJSStr())
	}
	str += "  }\n"
	return template.JS(str)
}

func (ms *MapShapes)PointsToJSMap() template.JS {
	str := "{\n"
	for i,mp := range ms.Points {
		str += fmt.Sprintf("    %d: {%s},\n", i, mp.ToJSStr())
	}
	str += "  }\n"
	return template.JS(str)
}

func (ms *MapShapes)IconsToJSMap() template.JS {
	str := "{\n"
	for i,mi := range ms.Icons {
		str += fmt.Sprintf("    %d: {%s},\n", i, mi.ToJSStr())
	}
	str += "  }\n"
	return template.JS(str)
}

// }}}

// {{{ TrackToMapLines

func TrackToMapLines(t routes.Track, color string, opacity float64) []MapLine {
	lines := []MapLine{}
	for _,l := range t.AsLines() {
		lines = append(lines, MapLine{Start:l.From, End:l.To, Color:color, Opacity:opacity})
	}
	return lines
}

// }}}
// {{{ BoxToMapLines

func BoxToMapLines(box geo.LatlongBox, color string) []MapLine {
	lines := []MapLine{}
	for _,l := range box.ToLines() {
		lines = append(lines, MapLine{Start:l.From, End:l.To, Color:color, Opacity:0.6})
	}
	return lines
}

// }}}

// {{{ ComparisonToShapes

// ComparisonToShapes flattens a comparison into drawable shapes. Common
// stretches share one color; each route's divergent stretches use the
// route's own color (or a default). Markers become points, arrows become
// rotated icons, and merged boxes become outlines.
func ComparisonToShapes(c *routes.Comparison) *MapShapes {
	ms := NewMapShapes()

	colorA,colorB := c.A.Color, c.B.Color
	if colorA == "" { colorA = KColorRouteA }
	if colorB == "" { colorB = KColorRouteB }

	for _,seg := range c.CommonSegments() {
		for _,ml := range TrackToMapLines(seg.Points, KColorCommon, 0.8) {
			ms.AddLine(ml)
		}
	}
	for _,seg := range c.DifferenceSegmentsA() {
		for _,ml := range TrackToMapLines(seg.Points, colorA, 0.9) {
			ms.AddLine(ml)
		}
	}
	for _,seg := range c.DifferenceSegmentsB() {
		for _,ml := range TrackToMapLines(seg.Points, colorB, 0.9) {
			ms.AddLine(ml)
		}
	}

	for _,km := range c.KilometerMarkersA {
		ms.AddPoint(MapPoint{Pos:km.Latlong, Icon:"milestone", Text:fmt.Sprintf("%d km", km.Km)})
	}
	for _,km := range c.KilometerMarkersB {
		ms.AddPoint(MapPoint{Pos:km.Latlong, Icon:"milestone", Text:fmt.Sprintf("%d km", km.Km)})
	}

	for _,da := range c.DirectionArrowsA {
		ms.AddIcon(MapIcon{Pos:da.Latlong, RotationDeg:da.BearingDeg, Color:colorA})
	}
	for _,da := range c.DirectionArrowsB {
		ms.AddIcon(MapIcon{Pos:da.Latlong, RotationDeg:da.BearingDeg, Color:colorB})
	}

	for _,box := range c.MergedBoxes {
		for _,ml := range BoxToMapLines(box, KColorBox) {
			ms.AddLine(ml)
		}
	}

	return ms
}

// }}}
// {{{ LegendHTML

// LegendHTML is a little blob for page templates; the frontend positions it.
func LegendHTML(c *routes.Comparison) template.HTML {
	colorA,colorB := c.A.Color, c.B.Color
	if colorA == "" { colorA = KColorRouteA }
	if colorB == "" { colorB = KColorRouteB }

	rows := []string{
		fmt.Sprintf(`<span style="color:%s">&#9632;</span> common`, KColorCommon),
		fmt.Sprintf(`<span style="color:%s">&#9632;</span> %s`, colorA, template.HTMLEscapeString(c.A.Name)),
		fmt.Sprintf(`<span style="color:%s">&#9632;</span> %s`, colorB, template.HTMLEscapeString(c.B.Name)),
	}
	return template.HTML(strings.Join(rows, "<br/>"))
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
