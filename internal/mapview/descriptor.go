package mapview

import "github.com/tripatlas/itinerary-viewer/internal/trip"

// Basemap and framing match the original trip map: centered roughly between
// Phoenix and Las Vegas.
const (
	Basemap   = "CartoDB positron"
	CenterLat = 34.5
	CenterLon = -112.5
	Zoom      = 7
)

// Descriptor is everything a map renderer needs to draw a view: basemap,
// framing and the resolved route segments with their markers and polylines.
type Descriptor struct {
	Basemap  string                 `json:"basemap"`
	Center   [2]float64             `json:"center"`
	Zoom     int                    `json:"zoom"`
	View     string                 `json:"view"`
	Segments []trip.ResolvedSegment `json:"segments"`
}

// Build composes the map descriptor for a view.
func Build(composer *trip.Composer, view trip.ViewSelector) Descriptor {
	return Descriptor{
		Basemap:  Basemap,
		Center:   [2]float64{CenterLat, CenterLon},
		Zoom:     Zoom,
		View:     view.String(),
		Segments: composer.Compose(view),
	}
}
