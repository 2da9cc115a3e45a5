package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/magdy/fawkes/tidytodo/internal/todo"
)

// handleMouse is the single entry point for pointer events. Targets are
// resolved against the freshly composed screen, so no row keeps handlers of
// its own.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	s := m.compose()
	x, y := msg.X, msg.Y+m.yOffset(len(s.lines))

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.drag = dragState{pressed: true, target: s.hit(x, y), lastY: y}
		case tea.MouseButtonWheelUp:
			m.cursor = clampCursor(m.cursor-1, len(m.visible()))
		case tea.MouseButtonWheelDown:
			m.cursor = clampCursor(m.cursor+1, len(m.visible()))
		}
		return m, nil

	case tea.MouseActionMotion:
		if !m.drag.pressed || m.drag.target.kind != targetItem {
			return m, nil
		}
		if y == m.drag.lastY {
			return m, nil
		}
		if !m.drag.active {
			m.drag.active = true
			m.log.Debug("dragstart", "id", m.drag.target.itemID)
		}
		// Use the leading edge of the dragged row: its bottom when moving
		// down, its top when moving up.
		edge := float64(y)
		if y > m.drag.lastY {
			edge++
		}
		m.drag.lastY = y
		return m.dragTo(s, edge), nil

	case tea.MouseActionRelease:
		d := m.drag
		m.drag = dragState{}
		if d.active {
			m.log.Debug("dragend", "id", d.target.itemID)
			m.statusMessage = "Reordered"
			return m, nil
		}
		if !d.pressed {
			return m, nil
		}
		// A click only counts when press and release land on the same control.
		if t := s.hit(x, y); t == d.target {
			return m.dispatch(t)
		}
	}
	return m, nil
}

// dragTo moves the dragged item before the nearest row below the pointer.
func (m Model) dragTo(s *screen, y float64) Model {
	id := m.drag.target.itemID
	before := todo.DropTarget(s.slots(), id, y)
	if err := m.list.Reorder(id, before); err != nil {
		m.log.Debug("reorder ignored", "id", id, "error", err)
		return m
	}
	return m.focusItem(id)
}

// dispatch performs the action bound to a resolved target.
func (m Model) dispatch(t target) (tea.Model, tea.Cmd) {
	m.log.Debug("dispatch", "kind", int(t.kind), "item", t.itemID, "part", int(t.part))
	switch t.kind {
	case targetItem:
		m = m.focusItem(t.itemID)
		switch t.part {
		case partCheckbox, partLabel:
			return m.toggleItem(t.itemID)
		case partDelete:
			return m.deleteItem(t.itemID)
		}
	case targetFilter:
		return m.applyFilter(t.filter)
	case targetClearCompleted:
		return m.clearCompleted()
	case targetThemeToggle:
		return m.toggleTheme()
	case targetInput:
		return m.focusInput()
	case targetSubmit:
		return m.submitInput()
	}
	return m, nil
}
