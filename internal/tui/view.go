package tui

import (
	"fmt"
	"strings"

	"github.com/magdy/fawkes/tidytodo/internal/todo"
)

const (
	emptyPlaceholder = "No todo items left!"
	dragHelpInfo     = "Drag and drop to reorder list"
	addControl       = "[ add ]"
)

func (m Model) View() string {
	s := m.compose()
	return strings.Join(m.padViewToWindow(s.lines), "\n")
}

func (m Model) padViewToWindow(lines []string) []string {
	for len(lines) < m.windowHeight {
		lines = append(lines, "")
	}
	return lines
}

// yOffset is how many lines the renderer drops from the top when the view
// is taller than the window.
func (m Model) yOffset(lines int) int {
	if m.windowHeight > 0 && lines > m.windowHeight {
		return lines - m.windowHeight
	}
	return 0
}

// compose lays out the whole screen and records its hit regions.
func (m Model) compose() *screen {
	s := &screen{}
	m.renderHeader(s)
	s.blank()
	m.renderInput(s)
	s.blank()
	m.renderList(s)
	s.blank()
	m.renderActions(s)
	s.blank()
	s.line(seg(m.styles.Muted.Render(dragHelpInfo)))
	s.line(seg(m.renderStatus()))
	for _, ln := range strings.Split(m.renderHelp(), "\n") {
		s.line(seg(ln))
	}
	return s
}

func (m Model) renderHeader(s *screen) {
	title := m.styles.Title.Render("T O D O")
	attr := m.styles.Attribute.Render(m.state.Theme.Attribute())
	icon := m.styles.ControlOn.Render("[" + m.state.Theme.Icon() + "]")
	gap := max(m.contentWidth()-len("T O D O")-len(m.state.Theme.Attribute())-4, 1)
	s.line(
		seg(title),
		seg(strings.Repeat(" ", gap)),
		seg(attr),
		seg(" "),
		hot(icon, target{kind: targetThemeToggle}),
	)
}

func (m Model) renderInput(s *screen) {
	prompt := m.styles.Checkbox.Render("○ ")
	if m.mode == modeInput {
		prompt = m.styles.Cursor.Render("› ")
	}
	field := padRight(m.textInput.View(), m.textInput.Width+1)
	s.line(
		seg(prompt),
		hot(field, target{kind: targetInput}),
		seg(" "),
		hot(m.styles.Control.Render(addControl), target{kind: targetSubmit}),
	)
}

// renderList draws one row per visible item, or the placeholder when the
// list holds no items at all.
func (m Model) renderList(s *screen) {
	if m.list.Len() == 0 {
		s.line(seg("  "), seg(m.styles.Placeholder.Render(emptyPlaceholder)))
		return
	}
	cursor := clampCursor(m.cursor, len(m.visible()))
	for i, it := range m.visible() {
		s.rows = append(s.rows, m.renderRow(s, it, i == cursor && m.mode == modeNormal))
	}
}

// renderRow draws an item and returns the handle of its sub-elements.
func (m Model) renderRow(s *screen, it todo.Item, selected bool) rowHandle {
	labelW := m.labelWidth()
	cursor := "  "
	if selected {
		cursor = m.styles.Cursor.Render("›") + " "
	}
	box := m.styles.Checkbox.Render("( )")
	if it.Completed {
		box = m.styles.CheckboxDone.Render("(✓)")
	}
	del := m.styles.Delete.Render("✕")

	labels := m.labelLines(it, labelW)
	h := rowHandle{
		itemID:   it.ID,
		top:      len(s.lines),
		height:   len(labels),
		checkbox: span{2, 5},
		label:    span{6, 6 + labelW},
		delete:   span{7 + labelW, 8 + labelW},
	}
	for i, ln := range labels {
		if i == 0 {
			s.lines = append(s.lines, cursor+box+" "+padRight(ln, labelW)+" "+del)
			continue
		}
		s.lines = append(s.lines, strings.Repeat(" ", 6)+ln)
	}
	return h
}

func (m Model) labelLines(it todo.Item, width int) []string {
	var lines []string
	switch {
	case it.Removing:
		for _, ln := range wrapPlain(it.Text, width) {
			lines = append(lines, m.styles.Removing.Render(ln))
		}
	case it.Completed:
		for _, ln := range wrapPlain(it.Text, width) {
			lines = append(lines, m.styles.LabelDone.Render(ln))
		}
	case m.useMD && m.md.renderer != nil:
		lines = m.md.render(it.Text, width)
	default:
		for _, ln := range wrapPlain(it.Text, width) {
			lines = append(lines, m.styles.Label.Render(ln))
		}
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func (m Model) filterSegments() ([]segment, int) {
	var segs []segment
	width := 0
	for i, f := range todo.Filters {
		if i > 0 {
			segs = append(segs, seg("  "))
			width += 2
		}
		st := m.styles.Control
		if f == m.state.Filter {
			st = m.styles.ControlOn
		}
		segs = append(segs, hot(st.Render(f.Label()), target{kind: targetFilter, filter: f}))
		width += len(f.Label())
	}
	return segs, width
}

// renderActions draws the actions bar. Wide terminals get the filter
// controls inline before "Clear Completed"; narrow ones get a separate block.
func (m Model) renderActions(s *screen) {
	cw := m.contentWidth()
	count := fmt.Sprintf("%d items left", m.list.ActiveCount())
	clearLabel := "Clear Completed"
	countSeg := seg(m.styles.Muted.Render(count))
	clearSeg := hot(m.styles.Control.Render(clearLabel), target{kind: targetClearCompleted})
	filters, fw := m.filterSegments()

	if m.inlineFilters {
		free := cw - len(count) - fw - len(clearLabel)
		gap1 := max(free/2, 2)
		gap2 := max(free-gap1, 2)
		segs := []segment{countSeg, seg(strings.Repeat(" ", gap1))}
		segs = append(segs, filters...)
		segs = append(segs, seg(strings.Repeat(" ", gap2)), clearSeg)
		s.line(segs...)
		return
	}

	gap := max(cw-len(count)-len(clearLabel), 2)
	s.line(countSeg, seg(strings.Repeat(" ", gap)), clearSeg)
	s.blank()
	segs := []segment{seg(strings.Repeat(" ", max((cw-fw)/2, 0)))}
	s.line(append(segs, filters...)...)
}

func (m Model) renderStatus() string {
	switch {
	case m.notice != "":
		return m.styles.Notice.Render(m.notice)
	case m.err != nil:
		return m.styles.Error.Render("Error: " + m.err.Error())
	case m.statusMessage != "":
		return m.styles.Muted.Render(m.statusMessage)
	}
	return ""
}

func (m Model) renderHelp() string {
	if m.mode == modeInput {
		return m.help.View(inputKeyMap{m.keys})
	}
	return m.help.View(m.keys)
}
