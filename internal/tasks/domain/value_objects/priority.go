package value_objects

import (
	"errors"
	"strings"
)

// Priority represents task urgency level. Exactly three levels exist;
// the numeric level is the sort key (higher = more important).
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

var ErrInvalidPriority = errors.New("invalid priority value")

var priorityNames = map[Priority]string{
	PriorityLow:    "low",
	PriorityMedium: "medium",
	PriorityHigh:   "high",
}

var priorityValues = map[string]Priority{
	"low":    PriorityLow,
	"medium": PriorityMedium,
	"high":   PriorityHigh,
}

var priorityDescriptions = map[Priority]string{
	PriorityLow:    "Low Priority",
	PriorityMedium: "Medium Priority",
	PriorityHigh:   "High Priority",
}

// ParsePriority creates a Priority from a string.
func ParsePriority(s string) (Priority, error) {
	p, ok := priorityValues[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, ErrInvalidPriority
	}
	return p, nil
}

// PriorityFromLevel returns the priority with the given numeric level.
func PriorityFromLevel(level int) (Priority, error) {
	p := Priority(level)
	if !p.IsValid() {
		return 0, ErrInvalidPriority
	}
	return p, nil
}

// String returns the string representation of the priority.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "unknown"
}

// Description returns the human-readable label for the priority.
func (p Priority) Description() string {
	if desc, ok := priorityDescriptions[p]; ok {
		return desc
	}
	return "Unknown Priority"
}

// IsValid returns true if the priority is a valid value.
func (p Priority) IsValid() bool {
	_, ok := priorityNames[p]
	return ok
}

// Level returns the numeric level used for ordering.
func (p Priority) Level() int {
	return int(p)
}
