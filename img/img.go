// Package img renders route comparisons as PNG images, for thumbnails and
// other places where a browser map is overkill. Everything is drawn with
// plain strokes; no fonts are loaded.
package img

import(
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/thomasaedk/routes"
	"github.com/thomasaedk/routes/geo"
)

var(
	KColorBackground = color.RGBA{0xfa, 0xfa, 0xf8, 0xff}
	KColorCommon     = color.RGBA{0x2e, 0x8b, 0x57, 0xff}
	KColorRouteA     = color.RGBA{0xdd, 0x00, 0x00, 0xff}
	KColorRouteB     = color.RGBA{0x00, 0x33, 0xcc, 0xff}
	KColorBox        = color.RGBA{0xff, 0x99, 0x00, 0xff}
	KColorMarker     = color.RGBA{0x22, 0x22, 0x22, 0xff}
)

// {{{ Options{}

type Options struct {
	Width,Height int
	MarginPx     int
	LineWidth    float64
}

func DefaultOptions() Options {
	return Options{Width: 1024, Height: 768, MarginPx: 24, LineWidth: 3.0}
}

// }}}
// {{{ Projection{}

// Projection maps latlongs onto pixels, north up, with the longitude scale
// corrected by cos(latitude). The region is padded a little and centered.
type Projection struct {
	box              geo.LatlongBox
	scaleX,scaleY    float64 // pixels per degree
	offsetX,offsetY  float64
}

func NewProjection(box geo.LatlongBox, widthPx,heightPx,marginPx int) Projection {
	box = box.PadBy(box.LatSpan()*0.05 + 1e-4, box.LongSpan()*0.05 + 1e-4)

	innerW := float64(widthPx - 2*marginPx)
	innerH := float64(heightPx - 2*marginPx)

	midLat := box.Center().Lat * math.Pi/180.0
	aspect := (box.LongSpan() * math.Cos(midLat)) / box.LatSpan()

	gw,gh := innerW,innerH
	if aspect > innerW/innerH {
		gh = innerW/aspect
	} else {
		gw = innerH*aspect
	}

	return Projection{
		box: box,
		scaleX: gw / box.LongSpan(),
		scaleY: gh / box.LatSpan(),
		offsetX: float64(marginPx) + (innerW-gw)/2.0,
		offsetY: float64(marginPx) + (innerH-gh)/2.0,
	}
}

func (p Projection)XY(ll geo.Latlong) (float64, float64) {
	x := p.offsetX + (ll.Long - p.box.SW.Long)*p.scaleX
	y := p.offsetY + (p.box.NE.Lat - ll.Lat)*p.scaleY // pixel y grows down the image
	return x,y
}

// }}}

// {{{ drawTrack, drawBox, drawMarkers, drawArrows

func drawTrack(dc *gg.Context, p Projection, t routes.Track, c color.Color, width float64) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	for _,l := range t.AsLines() {
		x1,y1 := p.XY(l.From)
		x2,y2 := p.XY(l.To)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
}

func drawBox(dc *gg.Context, p Projection, box geo.LatlongBox) {
	dc.SetColor(KColorBox)
	dc.SetLineWidth(2.0)
	dc.SetDash(6, 4)
	for _,l := range box.ToLines() {
		x1,y1 := p.XY(l.From)
		x2,y2 := p.XY(l.To)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
	dc.SetDash()
}

func drawMarkers(dc *gg.Context, p Projection, markers []routes.KilometerMarker) {
	for _,km := range markers {
		x,y := p.XY(km.Latlong)
		dc.SetColor(color.White)
		dc.DrawCircle(x, y, 5.0)
		dc.Fill()
		dc.SetColor(KColorMarker)
		dc.SetLineWidth(2.0)
		dc.DrawCircle(x, y, 5.0)
		dc.Stroke()
	}
}

func drawArrows(dc *gg.Context, p Projection, arrows []routes.DirectionArrow, c color.Color) {
	dc.SetColor(c)
	dc.SetLineWidth(2.0)
	for _,da := range arrows {
		x,y := p.XY(da.Latlong)

		// A chevron along the direction of travel; image y grows down,
		// so north points up via -cos.
		rad := da.BearingDeg * math.Pi/180.0
		tipX := x + math.Sin(rad)*9.0
		tipY := y - math.Cos(rad)*9.0
		dc.DrawLine(x, y, tipX, tipY)
		dc.Stroke()

		for _,barbDeg := range []float64{150.0, -150.0} {
			barbRad := rad + barbDeg*math.Pi/180.0
			dc.DrawLine(tipX, tipY, tipX+math.Sin(barbRad)*6.0, tipY-math.Cos(barbRad)*6.0)
			dc.Stroke()
		}
	}
}

// }}}
// {{{ routeColor

func routeColor(s string, dflt color.RGBA) color.RGBA {
	if len(s) == 7 && s[0] == '#' {
		if v,err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return color.RGBA{R: uint8(v>>16), G: uint8(v>>8), B: uint8(v), A: 0xff}
		}
	}
	return dflt
}

// }}}

// {{{ WriteComparisonPNG

// WriteComparisonPNG draws the whole comparison into one image: merged
// difference boxes underneath, then the segments, then markers and arrows
// on top.
func WriteComparisonPNG(w io.Writer, c *routes.Comparison, opts Options) error {
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(KColorBackground)
	dc.Clear()

	box := c.A.Track.BoundingBox().Union(c.B.Track.BoundingBox())
	proj := NewProjection(box, opts.Width, opts.Height, opts.MarginPx)

	for _,b := range c.MergedBoxes {
		drawBox(dc, proj, b)
	}

	colorA := routeColor(c.A.Color, KColorRouteA)
	colorB := routeColor(c.B.Color, KColorRouteB)

	for _,seg := range c.CommonSegments() {
		drawTrack(dc, proj, seg.Points, KColorCommon, opts.LineWidth+1.0)
	}
	for _,seg := range c.DifferenceSegmentsA() {
		drawTrack(dc, proj, seg.Points, colorA, opts.LineWidth)
	}
	for _,seg := range c.DifferenceSegmentsB() {
		drawTrack(dc, proj, seg.Points, colorB, opts.LineWidth)
	}

	drawMarkers(dc, proj, c.KilometerMarkersA)
	drawMarkers(dc, proj, c.KilometerMarkersB)
	drawArrows(dc, proj, c.DirectionArrowsA, colorA)
	drawArrows(dc, proj, c.DirectionArrowsB, colorB)

	return dc.EncodePNG(w)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
