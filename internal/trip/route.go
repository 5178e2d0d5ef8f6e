package trip

import "fmt"

// RouteSegment is one day's planned path: an ordered list of stop names plus
// the styling the line is drawn with. Stop order is the traversal order.
type RouteSegment struct {
	Day    int      `json:"day"`
	Label  string   `json:"label"`
	Color  string   `json:"color"`
	Stops  []string `json:"stops"`
	Weight int      `json:"weight"`
}

// ResolvedStop pairs a registry entry with its derived marker style.
type ResolvedStop struct {
	Location
	Marker MarkerStyle `json:"marker"`
}

// ResolvedSegment is a RouteSegment with every stop resolved to coordinates,
// ready to hand to a map renderer. Polyline holds [lat, lon] pairs in stop order.
type ResolvedSegment struct {
	Day      int            `json:"day"`
	Label    string         `json:"label"`
	Color    string         `json:"color"`
	Weight   int            `json:"weight"`
	Opacity  float64        `json:"opacity"`
	Stops    []ResolvedStop `json:"stops"`
	Polyline [][2]float64   `json:"polyline"`
}

// Composer selects and resolves route segments for a view.
type Composer struct {
	registry *Registry
	segments []RouteSegment // indexed in day order
}

// NewComposer builds a composer over the given registry and segment table.
// Every stop reference is checked against the registry up front; a broken
// reference is a configuration error, not a runtime condition.
func NewComposer(registry *Registry, segments []RouteSegment) (*Composer, error) {
	for _, seg := range segments {
		for _, name := range seg.Stops {
			if _, err := registry.Resolve(name); err != nil {
				return nil, fmt.Errorf("route segment %q: %w", seg.Label, err)
			}
		}
	}
	return &Composer{registry: registry, segments: segments}, nil
}

// Compose returns the resolved segments for the selector: a singleton for a
// single day, all segments in day order for the overview. The output depends
// only on the static tables, so it is identical for identical selectors.
func (c *Composer) Compose(view ViewSelector) []ResolvedSegment {
	var out []ResolvedSegment
	for _, seg := range c.segments {
		if !view.IsOverview() && seg.Day != view.DayIndex() {
			continue
		}
		out = append(out, c.resolve(seg))
	}
	return out
}

const lineOpacity = 0.8

func (c *Composer) resolve(seg RouteSegment) ResolvedSegment {
	resolved := ResolvedSegment{
		Day:     seg.Day,
		Label:   seg.Label,
		Color:   seg.Color,
		Weight:  seg.Weight,
		Opacity: lineOpacity,
	}
	for _, name := range seg.Stops {
		// Safe: NewComposer verified every reference.
		loc, _ := c.registry.Resolve(name)
		resolved.Stops = append(resolved.Stops, ResolvedStop{
			Location: loc,
			Marker:   StyleFor(loc.Category),
		})
		resolved.Polyline = append(resolved.Polyline, [2]float64{loc.Latitude, loc.Longitude})
	}
	return resolved
}
