package ui

import(
	"github.com/twpayne/go-polyline"

	"github.com/thomasaedk/routes/geo"
)

// EncodePath compresses a point sequence with the Google encoded-polyline
// algorithm at the default 1e-5 degree precision.
func EncodePath(lls []geo.Latlong) string {
	coords := make([][]float64, len(lls))
	for i,ll := range lls {
		coords[i] = []float64{ll.Lat, ll.Long}
	}
	return string(polyline.EncodeCoords(coords))
}

func DecodePath(s string) ([]geo.Latlong, error) {
	coords, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil { return nil, err }

	out := make([]geo.Latlong, len(coords))
	for i,c := range coords {
		out[i] = geo.Latlong{Lat: c[0], Long: c[1]}
	}
	return out, nil
}
