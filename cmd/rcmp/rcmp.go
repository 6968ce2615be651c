package main

import(
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/thomasaedk/routes"
	"github.com/thomasaedk/routes/fpdf"
	"github.com/thomasaedk/routes/gpx"
	"github.com/thomasaedk/routes/img"
	"github.com/thomasaedk/routes/ui"
)

var(
	ctx = context.Background()
	fVerbosity int
	fThreshold float64
	fLookBack int
	fMaxPoints int
	fNoOffset bool
	fCompact bool
	fColorA string
	fColorB string
	fJson string
	fKml string
	fPdf string
	fPng string
	fGpxA string
	fGpxB string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.Float64Var(&fThreshold, "threshold", routes.KDefaultThresholdMeters,
		"how close a point must be to the other track to count as common, in meters")
	flag.IntVar(&fLookBack, "lookback", 3, "points to look back when estimating local bearing")
	flag.IntVar(&fMaxPoints, "maxpoints", 1500, "cap on sampled points per track")
	flag.BoolVar(&fNoOffset, "nooffset", false, "don't nudge overlapping tracks apart for display")
	flag.BoolVar(&fCompact, "compact", false, "encode JSON bundle paths as polylines")
	flag.StringVar(&fColorA, "colora", "", "display color for the first route (#rrggbb)")
	flag.StringVar(&fColorB, "colorb", "", "display color for the second route (#rrggbb)")
	flag.StringVar(&fJson, "json", "", "write the render bundle JSON here ('-' for stdout)")
	flag.StringVar(&fKml, "kml", "", "write a KML document here")
	flag.StringVar(&fPdf, "pdf", "", "write a PDF comparison sheet here")
	flag.StringVar(&fPng, "png", "", "write a PNG image here")
	flag.StringVar(&fGpxA, "gpxa", "", "write the first route's display (offset) track as GPX here")
	flag.StringVar(&fGpxB, "gpxb", "", "write the second route's display (offset) track as GPX here")
	flag.Parse()
}

func loadRoute(filename, color string) routes.Route {
	r,err := gpx.ParseFile(filename)
	if err != nil { log.Fatal(err) }

	r.Id = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if color != "" { r.Color = color }

	return r
}

func optionsFromArgs() routes.Options {
	opts := routes.DefaultOptions()
	opts.Classifier.ThresholdMeters = fThreshold
	opts.Classifier.LookBack = fLookBack
	opts.Classifier.MaxSamplePoints = fMaxPoints
	opts.ApplyOffset = !fNoOffset
	return opts
}

// writeTo runs the emitter against the named file, or stdout for "-".
func writeTo(filename string, emit func(io.Writer) error) {
	if filename == "-" {
		if err := emit(os.Stdout); err != nil { log.Fatal(err) }
		return
	}

	f,err := os.Create(filename)
	if err != nil { log.Fatal(err) }
	defer f.Close()

	if err := emit(f); err != nil { log.Fatal(err) }
	if fVerbosity > 0 { fmt.Printf("wrote %s\n", filename) }
}

func bundleJSON(c *routes.Comparison) ([]byte, error) {
	rb := ui.NewRenderBundle(c)
	if fCompact { return rb.Compact().ToJSON() }
	return rb.ToJSON()
}

func emitOutputs(c *routes.Comparison) {
	if fJson != "" {
		writeTo(fJson, func(w io.Writer) error {
			jsonBytes,err := bundleJSON(c)
			if err != nil { return err }
			jsonBytes = append(jsonBytes, '\n')
			_,err = w.Write(jsonBytes)
			return err
		})
	}
	if fKml != "" {
		writeTo(fKml, func(w io.Writer) error { return ui.WriteKML(w, c) })
	}
	if fPdf != "" {
		writeTo(fPdf, func(w io.Writer) error { return fpdf.WriteComparison(w, c) })
	}
	if fPng != "" {
		writeTo(fPng, func(w io.Writer) error {
			return img.WriteComparisonPNG(w, c, img.DefaultOptions())
		})
	}
	for _,out := range []struct{
		filename string
		route    routes.Route
	}{
		{fGpxA, routes.Route{Name: c.A.Name, Track: c.OffsetA}},
		{fGpxB, routes.Route{Name: c.B.Name, Track: c.OffsetB}},
	} {
		if out.filename == "" { continue }
		route := out.route
		writeTo(out.filename, func(w io.Writer) error {
			gpxBytes,err := gpx.Write(route)
			if err != nil { return err }
			_,err = w.Write(gpxBytes)
			return err
		})
	}
}

func main() {
	if flag.NArg() != 2 {
		log.Fatal("usage: rcmp [flags] <a.gpx> <b.gpx>")
	}

	a := loadRoute(flag.Arg(0), fColorA)
	b := loadRoute(flag.Arg(1), fColorB)

	c,err := routes.Compare(ctx, a, b, optionsFromArgs())
	if err != nil { log.Fatal(err) }

	s := c.Summarize()
	fmt.Printf("%s\n", s)
	fmt.Printf("  A: %s\n  B: %s\n", s.SeparationA, s.SeparationB)

	if fVerbosity > 0 {
		for _,seg := range c.SegmentsA { fmt.Printf("  A %s\n", seg) }
		for _,seg := range c.SegmentsB { fmt.Printf("  B %s\n", seg) }
		for i,box := range c.MergedBoxes { fmt.Printf("  box[%d] %s\n", i, box) }
	}
	if fVerbosity > 1 {
		fmt.Printf("----{ debug }----\n%s", c.Log)
	}

	emitOutputs(c)
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
