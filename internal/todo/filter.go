package todo

import (
	"fmt"
	"strings"
)

type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// Filters lists the controls in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Label is the text on the filter control.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Next cycles All -> Active -> Completed -> All.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "active", "live":
		return FilterActive, nil
	case "completed", "done":
		return FilterCompleted, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter %q (want all|active|completed)", s)
	}
}

// Match reports whether an item is visible under f.
func (f Filter) Match(it Item) bool {
	switch f {
	case FilterActive:
		return !it.Completed
	case FilterCompleted:
		return it.Completed
	default:
		return true
	}
}

// State is the small amount of global UI state owned by the application.
type State struct {
	Theme  Theme
	Filter Filter
}

// ApplyFilter switches the current filter. Active and Completed are rejected
// with a *RejectedError when no item would match; the state is not changed.
func ApplyFilter(st *State, l *List, mode Filter) error {
	switch mode {
	case FilterActive:
		if l.ActiveCount() == 0 {
			return &RejectedError{Filter: mode, Notice: "No active items left!"}
		}
	case FilterCompleted:
		if l.CompletedCount() == 0 {
			return &RejectedError{Filter: mode, Notice: "No completed items left!"}
		}
	}
	st.Filter = mode
	return nil
}

// Visible returns the items passing the current filter, in order.
func Visible(st State, l *List) []Item {
	var out []Item
	for _, it := range l.items {
		if st.Filter.Match(it) {
			out = append(out, it)
		}
	}
	return out
}
