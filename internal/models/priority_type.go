package models

import (
	"fmt"
	"strings"
)

// Priority levels stored on a task
const (
	PriorityLow    = 0
	PriorityNormal = 1
	PriorityHigh   = 2
)

// DefaultPriority is used when a task is created without an explicit priority
const DefaultPriority = PriorityNormal

// Priority describes one priority level for display
type Priority struct {
	ID          int
	Description string
	Color       string
}

// Priorities lists every level from lowest to highest
var Priorities = []Priority{
	{ID: PriorityLow, Description: "low", Color: "#22C55E"},
	{ID: PriorityNormal, Description: "normal", Color: "#EAB308"},
	{ID: PriorityHigh, Description: "high", Color: "#EF4444"},
}

// ValidPriority reports whether p is a known priority level
func ValidPriority(p int) bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// PriorityByID returns the display info for a priority level.
// Unknown levels are reported as normal.
func PriorityByID(p int) Priority {
	if !ValidPriority(p) {
		return Priorities[PriorityNormal]
	}
	return Priorities[p]
}

// ParsePriority converts a priority name to its level
func ParsePriority(s string) (int, error) {
	for _, p := range Priorities {
		if strings.EqualFold(strings.TrimSpace(s), p.Description) {
			return p.ID, nil
		}
	}
	return 0, fmt.Errorf("invalid priority %q (must be low, normal or high)", s)
}
