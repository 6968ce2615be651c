package main

import(
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/thomasaedk/routes/gpx"
)

var(
	fVerbosity int
	fOut string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.StringVar(&fOut, "out", "", "rewrite the sanitized track as GPX here")
	flag.Parse()
}

func main() {
	if len(flag.Args()) == 0 {
		log.Fatal("usage: routeinfo [flags] <file.gpx> ...\n")
	}

	for _,filename := range flag.Args() {
		r,err := gpx.ParseFile(filename)
		if err != nil { log.Fatal(err) }

		clean := r.Sanitized()
		dropped := len(r.Track) - len(clean.Track)

		fmt.Printf(">>>> %s\n", filename)
		fmt.Printf("  << %s\n", clean)
		fmt.Printf("  << %d points (%d dropped), %.2fKM, box %s\n",
			len(clean.Track), dropped, clean.Track.LengthKM(), clean.Track.BoundingBox())
		fmt.Printf("  << %d km markers, %d direction arrows, duration %s\n",
			len(clean.Track.KilometerMarkers()), len(clean.Track.DirectionArrows()),
			clean.Track.Duration())

		if fVerbosity > 0 {
			for i,tp := range clean.Track {
				fmt.Printf("  - [%3d] %s\n", i, tp)
			}
		}

		if fOut != "" {
			gpxBytes,err := gpx.Write(clean)
			if err != nil { log.Fatal(err) }
			if err := os.WriteFile(fOut, gpxBytes, 0644); err != nil { log.Fatal(err) }
			fmt.Printf("  >> wrote %s\n", fOut)
		}
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
