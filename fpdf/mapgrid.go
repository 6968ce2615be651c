package fpdf

import(
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/thomasaedk/routes/geo"
)

// MapGrid maps a lat/long region onto a rectangle of PDF page space, with
// north up the page and the longitude scale corrected by cos(latitude) so
// shapes keep their ground aspect ratio.
type MapGrid struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	// The portion of PDF page space the region is drawn over (labels go outside of this)
	OffsetU     float64 // top-left corner, in PDF coords
	OffsetV     float64 // top-left corner, in PDF coords
	W,H         float64 // width and height, in PDF units (should be mm)

	// The range of values that get scaled onto the grid
	MinLat,MaxLat   float64
	MinLong,MaxLong float64
	Clip            bool // whether to drop lines that stick out of the grid

	LineColor []int // rgb, each [0,255]
}

// {{{ NewMapGrid

// NewMapGrid fits the box into the given page rectangle. The region is
// padded a little so tracks don't touch the frame, then centered in
// whichever dimension has slack.
func NewMapGrid(pdf *gofpdf.Fpdf, box geo.LatlongBox, offsetU,offsetV,w,h float64) MapGrid {
	box = box.PadBy(box.LatSpan()*0.05 + 1e-4, box.LongSpan()*0.05 + 1e-4)

	midLat := box.Center().Lat * math.Pi/180.0
	aspect := (box.LongSpan() * math.Cos(midLat)) / box.LatSpan() // ground width over height

	gw,gh := w,h
	if aspect > w/h {
		gh = w/aspect
	} else {
		gw = h*aspect
	}

	return MapGrid{
		Fpdf: pdf,
		OffsetU: offsetU + (w-gw)/2.0,
		OffsetV: offsetV + (h-gh)/2.0,
		W: gw,
		H: gh,
		MinLat: box.SW.Lat, MaxLat: box.NE.Lat,
		MinLong: box.SW.Long, MaxLong: box.NE.Long,
		Clip: true,
	}
}

// }}}
// {{{ mg.U, V, UV

// the bools are whether the coords are out-of-bounds for the grid.
func (mg MapGrid)U(long float64) (float64, bool) {
	ratio := (long - mg.MinLong) / (mg.MaxLong - mg.MinLong)

	u := mg.OffsetU + (ratio * mg.W)
	outOfBounds := ratio<0 || ratio>1

	return u,outOfBounds
}

// the bool is whether the coords are out-of-bounds for the grid.
func (mg MapGrid)V(lat float64) (float64, bool) {
	ratio := (lat - mg.MinLat) / (mg.MaxLat - mg.MinLat)

	v := mg.OffsetV + (mg.H - (ratio * mg.H)) // PDF v grows down the page
	outOfBounds := ratio<0 || ratio>1

	return v,outOfBounds
}

// the bool is whether the coords are out-of-bounds for the grid.
func (mg MapGrid)UV(ll geo.Latlong) (float64, float64, bool) {
	u,oobU := mg.U(ll.Long)
	v,oobV := mg.V(ll.Lat)

	return u, v, (oobU || oobV)
}

// }}}
// {{{ mg.MoveBy, LineBy

func (mg MapGrid)MoveBy(u,v float64) {
	currU,currV := mg.GetXY()
	mg.Fpdf.MoveTo(currU+u, currV+v)
}
func (mg MapGrid)LineBy(u,v float64) {
	currU,currV := mg.GetXY()
	mg.Fpdf.LineTo(currU+u, currV+v)
}

// }}}
// {{{ mg.MaybeSetDrawColor

func (mg MapGrid)MaybeSetDrawColor() {
	if len(mg.LineColor) == 3 {
		mg.SetDrawColor(mg.LineColor[0], mg.LineColor[1], mg.LineColor[2])
	}
}

// }}}
// {{{ mg.MoveTo, LineTo, Line

// We submit coords in latlong space, and the grid transforms them into PDFspace.
func (mg MapGrid)MoveTo(ll geo.Latlong) bool {
	u,v,oob := mg.UV(ll)
	mg.Fpdf.MoveTo(u,v)
	return oob
}

func (mg MapGrid)LineTo(ll geo.Latlong) bool {
	u,v,oob := mg.UV(ll)
	mg.Fpdf.LineTo(u,v)
	return oob
}

// Only draw the line if both points are inside bounds
func (mg MapGrid)Line(from,to geo.Latlong) {
	u1,v1,oob1 := mg.UV(from)
	u2,v2,oob2 := mg.UV(to)

	if !mg.Clip || (!oob1 && !oob2) {
		mg.MaybeSetDrawColor()
		mg.Fpdf.MoveTo(u1,v1)
		mg.Fpdf.LineTo(u2,v2)
	}

	mg.DrawPath("D")
}

// }}}
// {{{ mg.DrawFrame

func (mg MapGrid)DrawFrame() {
	mg.SetDrawColor(0x00, 0x00, 0x00)
	mg.SetLineWidth(0.5)
	mg.Fpdf.MoveTo(mg.OffsetU,      mg.OffsetV)
	mg.Fpdf.LineTo(mg.OffsetU+mg.W, mg.OffsetV)
	mg.Fpdf.LineTo(mg.OffsetU+mg.W, mg.OffsetV+mg.H)
	mg.Fpdf.LineTo(mg.OffsetU,      mg.OffsetV+mg.H)
	mg.Fpdf.LineTo(mg.OffsetU,      mg.OffsetV)
	mg.DrawPath("D")
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
