// Provides routines to render route comparisons as PDFs
package fpdf

import(
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/thomasaedk/routes"
	"github.com/thomasaedk/routes/geo"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

// {{{ var()

// The sheet is from NW(10,15) to SE(270,175), landscape Letter
var(
	SheetWidth = 260.0
	SheetHeight = 160.0
	SheetOffsetX = 10.0
	SheetOffsetY = 15.0

	CommonRGB = []int{0x2e, 0x8b, 0x57}
	RouteARGB = []int{0xdd, 0x00, 0x00}
	RouteBRGB = []int{0x00, 0x33, 0xcc}
	BoxRGB    = []int{0xff, 0x99, 0x00}
)

// }}}

// {{{ hexToRGB

func hexToRGB(s string, dflt []int) []int {
	if len(s) == 7 && s[0] == '#' {
		if v,err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return []int{int(v>>16) & 0xff, int(v>>8) & 0xff, int(v) & 0xff}
		}
	}
	return dflt
}

// }}}

// {{{ NewComparisonPdf

func NewComparisonPdf(box geo.LatlongBox) (*gofpdf.Fpdf, MapGrid) {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)

	mg := NewMapGrid(pdf, box, SheetOffsetX, SheetOffsetY, SheetWidth, SheetHeight)
	mg.DrawFrame()

	return pdf, mg
}

// }}}

// {{{ DrawSegments

func DrawSegments(mg MapGrid, segs []routes.Segment, rgb []int, width float64) {
	mg.SetDrawColor(rgb[0], rgb[1], rgb[2])
	mg.SetLineWidth(width)

	for _,seg := range segs {
		for _,l := range seg.Points.AsLines() {
			mg.Line(l.From, l.To)
		}
	}
}

// }}}
// {{{ DrawBoxes

func DrawBoxes(mg MapGrid, boxes []geo.LatlongBox) {
	mg.SetDrawColor(BoxRGB[0], BoxRGB[1], BoxRGB[2])
	mg.SetLineWidth(0.4)
	mg.SetDashPattern([]float64{2,2}, 0.0)

	for _,box := range boxes {
		for _,l := range box.ToLines() {
			mg.Line(l.From, l.To)
		}
	}

	mg.SetDashPattern([]float64{}, 0.0)
}

// }}}
// {{{ DrawMarkers

func DrawMarkers(mg MapGrid, markers []routes.KilometerMarker) {
	mg.SetFont("Arial", "", 6)
	mg.SetDrawColor(0x00, 0x00, 0x00)
	mg.SetTextColor(0x00, 0x00, 0x00)
	mg.SetLineWidth(0.2)

	for _,km := range markers {
		u,v,oob := mg.UV(km.Latlong)
		if oob { continue }

		mg.Circle(u, v, 1.2, "D")
		mg.Fpdf.MoveTo(u+1.6, v-2.0)
		mg.Cell(8, 4, fmt.Sprintf("%d", km.Km))
	}
}

// }}}
// {{{ DrawArrows

func DrawArrows(mg MapGrid, arrows []routes.DirectionArrow, rgb []int) {
	mg.SetDrawColor(rgb[0], rgb[1], rgb[2])
	mg.SetLineWidth(0.3)

	for _,da := range arrows {
		u,v,oob := mg.UV(da.Latlong)
		if oob { continue }

		// A little chevron along the direction of travel. Page v grows
		// downwards, so north points up via -cos.
		rad := da.BearingDeg * math.Pi/180.0
		tipU := u + math.Sin(rad)*2.0
		tipV := v - math.Cos(rad)*2.0

		mg.Fpdf.Line(u, v, tipU, tipV)
		for _,barbDeg := range []float64{150.0, -150.0} {
			barbRad := rad + barbDeg*math.Pi/180.0
			mg.Fpdf.Line(tipU, tipV, tipU+math.Sin(barbRad)*1.2, tipV-math.Cos(barbRad)*1.2)
		}
	}
}

// }}}
// {{{ DrawLegend

func DrawLegend(pdf *gofpdf.Fpdf, c *routes.Comparison) {
	nameA,nameB := c.A.Name, c.B.Name
	if nameA == "" { nameA = "route A" }
	if nameB == "" { nameB = "route B" }

	entries := []struct{
		rgb   []int
		label string
	}{
		{CommonRGB, "common"},
		{hexToRGB(c.A.Color, RouteARGB), nameA+" only"},
		{hexToRGB(c.B.Color, RouteBRGB), nameB+" only"},
	}

	width,height := 8.0,4.0
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(0x00, 0x00, 0x00)

	for i,e := range entries {
		x,y := SheetOffsetX+3.0, SheetOffsetY+3.0+float64(i)*(height+1.0)
		pdf.SetFillColor(e.rgb[0], e.rgb[1], e.rgb[2])
		pdf.Rect(x, y, width, height, "F")
		pdf.MoveTo(x+width+2.0, y)
		pdf.Cell(60, height, e.label)
	}
}

// }}}
// {{{ DrawSummary

func DrawSummary(pdf *gofpdf.Fpdf, c *routes.Comparison) {
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0x00, 0x00, 0x00)
	pdf.MoveTo(SheetOffsetX, SheetOffsetY+SheetHeight+2.0)
	pdf.Cell(SheetWidth, 8, c.Summarize().String())
}

// }}}

// {{{ WriteComparison

func WriteComparison(output io.Writer, c *routes.Comparison) error {
	box := c.A.Track.BoundingBox().Union(c.B.Track.BoundingBox())
	pdf,mg := NewComparisonPdf(box)

	DrawSegments(mg, c.CommonSegments(), CommonRGB, 0.8)
	DrawSegments(mg, c.DifferenceSegmentsA(), hexToRGB(c.A.Color, RouteARGB), 0.5)
	DrawSegments(mg, c.DifferenceSegmentsB(), hexToRGB(c.B.Color, RouteBRGB), 0.5)
	DrawBoxes(mg, c.MergedBoxes)
	DrawMarkers(mg, c.KilometerMarkersA)
	DrawMarkers(mg, c.KilometerMarkersB)
	DrawArrows(mg, c.DirectionArrowsA, hexToRGB(c.A.Color, RouteARGB))
	DrawArrows(mg, c.DirectionArrowsB, hexToRGB(c.B.Color, RouteBRGB))
	DrawLegend(pdf, c)
	DrawSummary(pdf, c)

	return pdf.Output(output)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
