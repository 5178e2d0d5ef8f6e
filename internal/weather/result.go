package weather

import "fmt"

// Condition is one of the six display buckets a WMO weather code maps to.
type Condition string

const (
	ConditionSunny        Condition = "Sunny"
	ConditionPartlyCloudy Condition = "Partly Cloudy"
	ConditionFoggy        Condition = "Foggy"
	ConditionRainy        Condition = "Rainy"
	ConditionSnow         Condition = "Snow"
	ConditionStormy       Condition = "Stormy"
)

// Icon returns the stable token for the condition, for renderers that map
// tokens to their own assets.
func (c Condition) Icon() string {
	switch c {
	case ConditionPartlyCloudy:
		return "partly-cloudy"
	case ConditionFoggy:
		return "fog"
	case ConditionRainy:
		return "rain"
	case ConditionSnow:
		return "snow"
	case ConditionStormy:
		return "lightning"
	default:
		return "sun"
	}
}

// Glyph returns the emoji used in the display string.
func (c Condition) Glyph() string {
	switch c {
	case ConditionPartlyCloudy:
		return "⛅"
	case ConditionFoggy:
		return "🌫️"
	case ConditionRainy:
		return "🌧️"
	case ConditionSnow:
		return "❄️"
	case ConditionStormy:
		return "⚡"
	default:
		return "☀️"
	}
}

// Classify maps a WMO weather code to a condition bucket. The mapping is
// total: any code not matched below reads as clear sky.
func Classify(code int) Condition {
	switch {
	case code >= 95:
		return ConditionStormy
	case code == 71 || code == 73 || code == 75:
		return ConditionSnow
	case code == 51 || code == 53 || code == 55 || code == 61 || code == 63 || code == 65:
		return ConditionRainy
	case code == 45 || code == 48:
		return ConditionFoggy
	case code >= 1 && code <= 3:
		return ConditionPartlyCloudy
	default:
		return ConditionSunny
	}
}

// Status is the outcome of a forecast lookup.
type Status string

const (
	// StatusOK means the service returned a usable daily forecast.
	StatusOK Status = "ok"
	// StatusUnavailable means the service answered but had no daily data,
	// typically because the date is outside its forecast horizon.
	StatusUnavailable Status = "unavailable"
	// StatusOffline means the lookup failed outright (network error, timeout,
	// malformed response, open circuit).
	StatusOffline Status = "offline"
)

// Result is the classified outcome of a single forecast lookup. A Result is
// always one of three shapes: errors never escape the client.
type Result struct {
	Status    Status    `json:"status"`
	Condition Condition `json:"condition,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	HighF     float64   `json:"high_f,omitempty"`
	LowF      float64   `json:"low_f,omitempty"`
}

// Ok builds a successful result from the classified code and temperatures.
func Ok(code int, highF, lowF float64) Result {
	cond := Classify(code)
	return Result{
		Status:    StatusOK,
		Condition: cond,
		Icon:      cond.Icon(),
		HighF:     highF,
		LowF:      lowF,
	}
}

// Unavailable is the degraded result for dates the service cannot cover.
func Unavailable() Result {
	return Result{Status: StatusUnavailable}
}

// Offline is the degraded result for any failed lookup.
func Offline() Result {
	return Result{Status: StatusOffline}
}

// Display renders the user-facing weather line.
func (r Result) Display() string {
	switch r.Status {
	case StatusOK:
		return fmt.Sprintf("%s %s | H: %g°F L: %g°F", r.Condition.Glyph(), r.Condition, r.HighF, r.LowF)
	case StatusUnavailable:
		return "Weather unavailable (Date out of range)"
	default:
		return "Weather service offline"
	}
}
