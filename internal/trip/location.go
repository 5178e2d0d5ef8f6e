package trip

import (
	"errors"
	"fmt"
)

// Category classifies a location for marker styling purposes.
type Category string

const (
	CategoryStart     Category = "start"
	CategoryStop      Category = "stop"
	CategoryWaypoint  Category = "waypoint"
	CategoryHighlight Category = "highlight"
)

// Location is a named point on the trip with fixed coordinates.
type Location struct {
	Name      string   `json:"name"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Category  Category `json:"category"`
}

// MarkerStyle is the icon and color a location is drawn with on the map.
type MarkerStyle struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// StyleFor derives the marker style from a location category.
// Unknown categories fall back to the neutral info marker on purpose.
func StyleFor(c Category) MarkerStyle {
	switch c {
	case CategoryStart:
		return MarkerStyle{Icon: "plane", Color: "green"}
	case CategoryStop:
		return MarkerStyle{Icon: "bed", Color: "blue"}
	case CategoryHighlight:
		return MarkerStyle{Icon: "camera", Color: "red"}
	default:
		return MarkerStyle{Icon: "info-sign", Color: "gray"}
	}
}

// ErrUnknownLocation is returned when a name has no entry in the registry.
var ErrUnknownLocation = errors.New("unknown location")

// Registry is the immutable name -> Location table. It is fully populated at
// construction time; there is no lazy loading.
type Registry struct {
	byName map[string]Location
}

// NewRegistry builds a registry from the given locations.
func NewRegistry(locations []Location) *Registry {
	byName := make(map[string]Location, len(locations))
	for _, loc := range locations {
		byName[loc.Name] = loc
	}
	return &Registry{byName: byName}
}

// Resolve looks up a location by name.
func (r *Registry) Resolve(name string) (Location, error) {
	loc, ok := r.byName[name]
	if !ok {
		return Location{}, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}
	return loc, nil
}

// Len reports how many locations are registered.
func (r *Registry) Len() int {
	return len(r.byName)
}
