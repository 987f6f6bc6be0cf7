package models

import "github.com/samber/lo"

// Instructor is an immutable roster entry: the swim styles the instructor
// can teach and the weekly windows they are on deck.
type Instructor struct {
	Name         string       `json:"name"`
	SwimStyles   []string     `json:"swim_style"`
	Availability []TimeWindow `json:"availability"`
}

// Teaches reports whether the instructor covers the given swim style.
func (i Instructor) Teaches(style string) bool {
	return lo.Contains(i.SwimStyles, style)
}
