package fpdf

// go test -v github.com/thomasaedk/routes/fpdf

import(
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/thomasaedk/routes"
	"github.com/thomasaedk/routes/geo"
)

func testPdf() *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.AddPage()
	return pdf
}

func TestMapGridMapping(t *testing.T) {
	box := geo.LatlongBox{
		SW: geo.Latlong{Lat: 0.0, Long: 0.0},
		NE: geo.Latlong{Lat: 0.01, Long: 0.04},
	}
	mg := NewMapGrid(testPdf(), box, 10, 15, 260, 160)

	// Corners of the (padded) region land on the corners of the grid.
	if u,oob := mg.U(mg.MinLong); oob || math.Abs(u-mg.OffsetU) > 1e-9 {
		t.Errorf("U(MinLong): got %.3f oob=%v, expected %.3f", u, oob, mg.OffsetU)
	}
	if u,oob := mg.U(mg.MaxLong); oob || math.Abs(u-(mg.OffsetU+mg.W)) > 1e-9 {
		t.Errorf("U(MaxLong): got %.3f oob=%v, expected %.3f", u, oob, mg.OffsetU+mg.W)
	}

	// North is at the top of the page.
	if v,oob := mg.V(mg.MaxLat); oob || math.Abs(v-mg.OffsetV) > 1e-9 {
		t.Errorf("V(MaxLat): got %.3f oob=%v, expected %.3f", v, oob, mg.OffsetV)
	}
	if v,oob := mg.V(mg.MinLat); oob || math.Abs(v-(mg.OffsetV+mg.H)) > 1e-9 {
		t.Errorf("V(MinLat): got %.3f oob=%v, expected %.3f", v, oob, mg.OffsetV+mg.H)
	}

	// The original box sits inside the padded region.
	if _,_,oob := mg.UV(box.SW); oob {
		t.Errorf("box.SW should be in bounds")
	}
	if _,_,oob := mg.UV(geo.Latlong{Lat: 1.0, Long: 1.0}); !oob {
		t.Errorf("faraway point should be out of bounds")
	}
}

func TestMapGridAspect(t *testing.T) {
	// A region four times wider than tall gets the full width and a
	// short grid, centered vertically.
	wide := geo.LatlongBox{
		SW: geo.Latlong{Lat: 0.0, Long: 0.0},
		NE: geo.Latlong{Lat: 0.01, Long: 0.04},
	}
	mg := NewMapGrid(testPdf(), wide, 10, 15, 260, 160)
	if mg.W != 260 || mg.H >= 160 {
		t.Errorf("wide region: got %.1fx%.1f, expected full width", mg.W, mg.H)
	}
	if math.Abs(mg.OffsetV-(15+(160-mg.H)/2.0)) > 1e-9 {
		t.Errorf("wide region not centered vertically: OffsetV %.3f", mg.OffsetV)
	}

	// At 60N a degree of longitude covers half the ground a degree of
	// latitude does, and the grid shape should say so.
	narrow := geo.LatlongBox{
		SW: geo.Latlong{Lat: 59.995, Long: 9.995},
		NE: geo.Latlong{Lat: 60.005, Long: 10.005},
	}
	mg = NewMapGrid(testPdf(), narrow, 10, 15, 260, 160)
	if mg.H != 160 || mg.W >= 260 {
		t.Errorf("tall region: got %.1fx%.1f, expected full height", mg.W, mg.H)
	}
	if ratio := mg.W/mg.H; math.Abs(ratio-0.5) > 0.05 {
		t.Errorf("aspect at 60N: got %.3f, expected about 0.5", ratio)
	}
}

func TestWriteComparison(t *testing.T) {
	trA := routes.Track{}
	trB := routes.Track{}
	for i:=0; i<21; i++ {
		ll := geo.Latlong{Lat: 0.0, Long: float64(i)*0.001}
		trA = append(trA, routes.TrackPoint{Latlong: ll})
		trB = append(trB, routes.TrackPoint{Latlong: ll})
	}
	for i:=8; i<=12; i++ {
		trB[i].Lat += 0.005
	}

	c,err := routes.Compare(context.Background(),
		routes.Route{Id:"a", Name:"Morning run", Track:trA},
		routes.Route{Id:"b", Name:"Evening run", Track:trB},
		routes.DefaultOptions())
	if err != nil { t.Fatalf("Compare: %v", err) }

	buf := bytes.Buffer{}
	if err := WriteComparison(&buf, c); err != nil {
		t.Fatalf("WriteComparison: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF")
	}
	if buf.Len() < 1000 {
		t.Errorf("output suspiciously small: %d bytes", buf.Len())
	}
}

func TestWriteComparisonDegenerate(t *testing.T) {
	c,err := routes.Compare(context.Background(),
		routes.Route{Id:"a"}, routes.Route{Id:"b"}, routes.DefaultOptions())
	if err != nil { t.Fatalf("Compare: %v", err) }

	buf := bytes.Buffer{}
	if err := WriteComparison(&buf, c); err != nil {
		t.Fatalf("WriteComparison on empty routes: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF")
	}
}
