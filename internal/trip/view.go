package trip

import "fmt"

// DayCount is the fixed length of the trip.
const DayCount = 4

// ViewSelector scopes rendering to the whole trip or to a single day.
// The zero value is the overview.
type ViewSelector struct {
	day int // 0 = overview, 1..DayCount = that day
}

// Overview selects all days.
var Overview = ViewSelector{}

// Day selects a single day. n must be in [1, DayCount].
func Day(n int) (ViewSelector, error) {
	if n < 1 || n > DayCount {
		return ViewSelector{}, fmt.Errorf("day out of range: %d", n)
	}
	return ViewSelector{day: n}, nil
}

// ParseView converts the wire form ("overview", "day1".."day4") into a selector.
func ParseView(s string) (ViewSelector, error) {
	switch s {
	case "overview":
		return Overview, nil
	case "day1":
		return Day(1)
	case "day2":
		return Day(2)
	case "day3":
		return Day(3)
	case "day4":
		return Day(4)
	}
	return ViewSelector{}, fmt.Errorf("invalid view %q", s)
}

// IsOverview reports whether all days are selected.
func (v ViewSelector) IsOverview() bool { return v.day == 0 }

// DayIndex returns the selected day (1-based), or 0 for the overview.
func (v ViewSelector) DayIndex() int { return v.day }

// Days returns the 1-based day indices covered by the selector, in order.
func (v ViewSelector) Days() []int {
	if v.day != 0 {
		return []int{v.day}
	}
	days := make([]int, DayCount)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

func (v ViewSelector) String() string {
	if v.day == 0 {
		return "overview"
	}
	return fmt.Sprintf("day%d", v.day)
}
