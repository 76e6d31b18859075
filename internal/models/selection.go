package models

import (
	"fmt"
	"strings"
)

// FilterSelection chooses which tasks are visible
type FilterSelection int

const (
	FilterAll FilterSelection = iota
	FilterActiveOnly
	FilterDoneOnly
)

// SortSelection chooses how visible tasks are ordered
type SortSelection int

const (
	SortByDueDate SortSelection = iota
	SortByPriority
)

// Defaults for a fresh session
const (
	DefaultFilter = FilterAll
	DefaultSort   = SortByDueDate
)

var filterNames = map[FilterSelection]string{
	FilterAll:        "all",
	FilterActiveOnly: "active",
	FilterDoneOnly:   "done",
}

var sortNames = map[SortSelection]string{
	SortByDueDate:  "date",
	SortByPriority: "priority",
}

func (f FilterSelection) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("filter(%d)", int(f))
}

func (s SortSelection) String() string {
	if name, ok := sortNames[s]; ok {
		return name
	}
	return fmt.Sprintf("sort(%d)", int(s))
}

// ParseFilter converts "all", "active" or "done" to a FilterSelection
func ParseFilter(s string) (FilterSelection, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range filterNames {
		if name == s {
			return f, nil
		}
	}
	return DefaultFilter, fmt.Errorf("invalid filter %q (must be all, active or done)", s)
}

// ParseSort converts "date" or "priority" to a SortSelection
func ParseSort(s string) (SortSelection, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, name := range sortNames {
		if name == s {
			return v, nil
		}
	}
	return DefaultSort, fmt.Errorf("invalid sort %q (must be date or priority)", s)
}

// MarshalText implements encoding.TextMarshaler
func (f FilterSelection) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *FilterSelection) UnmarshalText(text []byte) error {
	v, err := ParseFilter(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (s SortSelection) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *SortSelection) UnmarshalText(text []byte) error {
	v, err := ParseSort(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
