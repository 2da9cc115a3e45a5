package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/magdy/fawkes/tidytodo/internal/todo"
)

type targetKind int

const (
	targetNone targetKind = iota
	targetItem
	targetFilter
	targetClearCompleted
	targetThemeToggle
	targetInput
	targetSubmit
)

// part is the sub-element of an item row that was hit.
type part int

const (
	partRow part = iota
	partCheckbox
	partLabel
	partDelete
)

// target is what a click or key resolves to before dispatch.
type target struct {
	kind   targetKind
	itemID string
	part   part
	filter todo.Filter
}

type span struct{ x0, x1 int }

func (s span) contains(x int) bool { return x >= s.x0 && x < s.x1 }

// region is a clickable run of cells on one screen line.
type region struct {
	y int
	span
	target target
}

// rowHandle describes where one item row was drawn.
type rowHandle struct {
	itemID   string
	top      int
	height   int
	checkbox span
	label    span
	delete   span
}

func (r rowHandle) mid() float64 {
	return float64(r.top) + float64(r.height)/2
}

func (r rowHandle) hit(x, y int) (target, bool) {
	if y < r.top || y >= r.top+r.height {
		return target{}, false
	}
	t := target{kind: targetItem, itemID: r.itemID, part: partRow}
	switch {
	case y == r.top && r.checkbox.contains(x):
		t.part = partCheckbox
	case y == r.top && r.delete.contains(x):
		t.part = partDelete
	case r.label.contains(x):
		t.part = partLabel
	}
	return t, true
}

// segment is a piece of a screen line, optionally clickable.
type segment struct {
	text   string
	target target
}

func seg(text string) segment { return segment{text: text} }

func hot(text string, t target) segment { return segment{text: text, target: t} }

// screen accumulates rendered lines together with their hit regions.
type screen struct {
	lines   []string
	regions []region
	rows    []rowHandle
}

func (s *screen) blank() {
	s.lines = append(s.lines, "")
}

// line appends one line built from segments and returns its y.
func (s *screen) line(segs ...segment) int {
	y := len(s.lines)
	var b strings.Builder
	x := 0
	for _, sg := range segs {
		w := xansi.StringWidth(sg.text)
		if sg.target.kind != targetNone && w > 0 {
			s.regions = append(s.regions, region{y: y, span: span{x, x + w}, target: sg.target})
		}
		b.WriteString(sg.text)
		x += w
	}
	s.lines = append(s.lines, b.String())
	return y
}

// hit resolves a cell to a target. Item rows win over plain regions.
func (s *screen) hit(x, y int) target {
	for _, r := range s.rows {
		if t, ok := r.hit(x, y); ok {
			return t
		}
	}
	for _, r := range s.regions {
		if r.y == y && r.contains(x) {
			return r.target
		}
	}
	return target{}
}

func (s *screen) slots() []todo.Slot {
	out := make([]todo.Slot, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, todo.Slot{ID: r.itemID, Mid: r.mid()})
	}
	return out
}

// filtersInline reports whether the filter controls share the actions bar.
func filtersInline(width, threshold int) bool {
	return width >= threshold
}

// padRight pads an ANSI string with spaces to width cells.
func padRight(s string, width int) string {
	w := xansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
