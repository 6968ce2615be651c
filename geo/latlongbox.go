package geo

import "fmt"

// LatlongBox is an axis-aligned bounding box, held as its southwest and
// northeast corners. Boxes are assumed not to straddle the antimeridian;
// the tracks this module deals in never do.
type LatlongBox struct {
	SW Latlong `json:"sw"`
	NE Latlong `json:"ne"`
}

func (b LatlongBox) String() string { return fmt.Sprintf("%v-%v", b.SW, b.NE) }

func BoundingBox(pts []Latlong) LatlongBox {
	if len(pts) == 0 { return LatlongBox{} }
	b := pts[0].BoxTo(pts[0])
	for _, p := range pts[1:] {
		b = b.Enclose(p)
	}
	return b
}

func (b LatlongBox) Enclose(p Latlong) LatlongBox {
	if p.Lat < b.SW.Lat { b.SW.Lat = p.Lat }
	if p.Lat > b.NE.Lat { b.NE.Lat = p.Lat }
	if p.Long < b.SW.Long { b.SW.Long = p.Long }
	if p.Long > b.NE.Long { b.NE.Long = p.Long }
	return b
}

func (b LatlongBox) Union(o LatlongBox) LatlongBox {
	return b.Enclose(o.SW).Enclose(o.NE)
}

func (b LatlongBox) Contains(p Latlong) bool {
	return p.Lat >= b.SW.Lat && p.Lat <= b.NE.Lat &&
		p.Long >= b.SW.Long && p.Long <= b.NE.Long
}

func (b LatlongBox) ContainsBox(o LatlongBox) bool {
	return b.Contains(o.SW) && b.Contains(o.NE)
}

// OverlapsWith reports whether the boxes intersect or touch, with tolDeg of
// slack on each axis so near-misses still count as overlapping.
func (b LatlongBox) OverlapsWith(o LatlongBox, tolDeg float64) bool {
	if b.NE.Lat < o.SW.Lat-tolDeg || o.NE.Lat < b.SW.Lat-tolDeg { return false }
	if b.NE.Long < o.SW.Long-tolDeg || o.NE.Long < b.SW.Long-tolDeg { return false }
	return true
}

// PadBy grows the box by the given number of degrees on each side of each
// axis. Negative padding is not a thing callers do, and isn't guarded.
func (b LatlongBox) PadBy(latDeg, longDeg float64) LatlongBox {
	b.SW.Lat -= latDeg
	b.NE.Lat += latDeg
	b.SW.Long -= longDeg
	b.NE.Long += longDeg
	return b
}

func (b LatlongBox) LatSpan() float64 { return b.NE.Lat - b.SW.Lat }

func (b LatlongBox) LongSpan() float64 { return b.NE.Long - b.SW.Long }

func (b LatlongBox) Center() Latlong {
	return b.SW.InterpolateTo(b.NE, 0.5)
}

// ToLines returns the four edges, anticlockwise from the southwest corner.
func (b LatlongBox) ToLines() []LatlongLine {
	se := Latlong{b.SW.Lat, b.NE.Long}
	nw := Latlong{b.NE.Lat, b.SW.Long}
	return []LatlongLine{
		b.SW.LineTo(se),
		se.LineTo(b.NE),
		b.NE.LineTo(nw),
		nw.LineTo(b.SW),
	}
}
