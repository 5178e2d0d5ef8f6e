package trip

import "fmt"

// Section is one block of a day's narrative (a heading plus bullet items).
type Section struct {
	Heading string   `json:"heading"`
	Items   []string `json:"items"`
}

// DayPlan is the static content for one trip day. ProbeLocation names the
// registry entry whose coordinates represent the day for weather lookups.
type DayPlan struct {
	Index         int       `json:"index"`
	Title         string    `json:"title"`
	ProbeLocation string    `json:"probe_location"`
	Sections      []Section `json:"sections"`
}

// ValidatePlans checks that day plans cover days 1..DayCount in order and
// that every probe location resolves. Called once at startup; any error here
// is a data-table bug and must abort the process.
func ValidatePlans(registry *Registry, plans []DayPlan) error {
	if len(plans) != DayCount {
		return fmt.Errorf("expected %d day plans, got %d", DayCount, len(plans))
	}
	for i, plan := range plans {
		if plan.Index != i+1 {
			return fmt.Errorf("day plan at position %d has index %d", i, plan.Index)
		}
		if _, err := registry.Resolve(plan.ProbeLocation); err != nil {
			return fmt.Errorf("day %d probe location: %w", plan.Index, err)
		}
	}
	return nil
}
