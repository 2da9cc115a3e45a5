package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/magdy/fawkes/tidytodo/internal/config"
	"github.com/magdy/fawkes/tidytodo/internal/logging"
	"github.com/magdy/fawkes/tidytodo/internal/todo"
)

const (
	defaultWindowWidth = 80
	maxContentWidth    = 72
	minContentWidth    = 24
	minInputWidth      = 10
	// cursor (2) + checkbox (3) + gap (1) ... gap (1) + delete (1)
	rowChrome = 8
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

type removalDoneMsg struct{ id string }

type noticeExpiredMsg struct{ seq int }

type dragState struct {
	pressed bool
	active  bool
	target  target
	lastY   int
}

// Options configures a Model.
type Options struct {
	UI     config.UIConfig
	Logger *slog.Logger
	// Seeds are added as items before the first render.
	Seeds []string
}

// Model is the central application state.
type Model struct {
	list  *todo.List
	state todo.State

	mode      mode
	textInput textinput.Model
	keys      keyMap
	help      help.Model
	styles    styles
	md        markdown
	useMD     bool

	cursor        int
	pendingD      bool
	drag          dragState
	statusMessage string
	notice        string
	noticeSeq     int
	err           error

	windowWidth   int
	windowHeight  int
	inlineFilters bool
	inlineMin     int

	removalDelay   time.Duration
	noticeDuration time.Duration

	log *slog.Logger
}

// New builds the model and applies the startup layout.
func New(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	theme, err := initialTheme(opts.UI.Theme)
	if err != nil {
		return Model{}, err
	}
	filter, err := todo.ParseFilter(opts.UI.Filter)
	if err != nil {
		return Model{}, err
	}
	inlineMin := opts.UI.InlineFiltersMinWidth
	if inlineMin <= 0 {
		inlineMin = config.DefaultInlineFiltersMinWidth
	}

	ti := textinput.New()
	ti.CharLimit = 0
	ti.Placeholder = "Create a new todo..."
	ti.Prompt = ""

	m := Model{
		list:           todo.NewList(),
		state:          todo.State{Theme: theme},
		mode:           modeNormal,
		textInput:      ti,
		keys:           defaultKeyMap(),
		help:           help.New(),
		styles:         newStyles(theme),
		useMD:          opts.UI.Markdown,
		windowWidth:    defaultWindowWidth,
		inlineMin:      inlineMin,
		removalDelay:   opts.UI.RemovalDelay,
		noticeDuration: opts.UI.NoticeDuration,
		log:            logger,
	}
	for _, s := range opts.Seeds {
		m.list.Add(s)
	}
	if err := todo.ApplyFilter(&m.state, m.list, filter); err != nil {
		m.log.Info("initial filter rejected", "filter", filter.String(), "error", err)
	}
	m = m.applyLayout()
	return m, nil
}

// Run starts the interactive program.
func Run(opts Options) error {
	applyColorProfilePreference()
	m, err := New(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.log.Debug("Update called", "msg_type", fmt.Sprintf("%T", msg))
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.log.Debug("WindowSizeMsg received", "width", msg.Width, "height", msg.Height)
		if msg.Width > 0 {
			m.windowWidth = msg.Width
		}
		if msg.Height > 0 {
			m.windowHeight = msg.Height
		}
		return m.applyLayout(), nil
	case removalDoneMsg:
		if m.list.Remove(msg.id) {
			m.log.Debug("item removed", "id", msg.id)
			m.cursor = clampCursor(m.cursor, len(m.visible()))
			m.statusMessage = "Deleted"
		}
		return m, nil
	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}
	if m.mode == modeInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyLayout recomputes everything derived from the window size.
func (m Model) applyLayout() Model {
	m.inlineFilters = filtersInline(m.windowWidth, m.inlineMin)
	m.help.Width = m.windowWidth
	m = m.applyEditorWidth()
	return m.ensureRenderer()
}

func (m Model) contentWidth() int {
	w := m.windowWidth
	if w <= 0 {
		w = defaultWindowWidth
	}
	return max(min(w, maxContentWidth), minContentWidth)
}

func (m Model) labelWidth() int {
	return m.contentWidth() - rowChrome
}

func (m Model) applyEditorWidth() Model {
	// prompt (2) + gap (1) + "[ add ]" (7)
	m.textInput.Width = max(m.contentWidth()-10, minInputWidth)
	return m
}

func (m Model) ensureRenderer() Model {
	if !m.useMD {
		m.md = markdown{}
		return m
	}
	md, err := m.md.ensure(m.state.Theme, m.labelWidth())
	if err != nil {
		m.err = err
		return m
	}
	m.md = md
	return m
}

func (m Model) visible() []todo.Item {
	return todo.Visible(m.state, m.list)
}

// selectedID is the id of the item under the cursor, or "".
func (m Model) selectedID() string {
	items := m.visible()
	if len(items) == 0 {
		return ""
	}
	return items[clampCursor(m.cursor, len(items))].ID
}

func (m Model) focusItem(id string) Model {
	for i, it := range m.visible() {
		if it.ID == id {
			m.cursor = i
			break
		}
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.log.Debug("KeyMsg received", "key", msg.String())
	if m.mode == modeInput {
		return m.handleInputKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m.submitInput()
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeNormal
		m.textInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle 'd' for dd command
	if m.pendingD {
		m.pendingD = false
		m.statusMessage = ""
		if key.Matches(msg, m.keys.Delete) {
			return m.deleteItem(m.selectedID())
		}
		// Any other key cancels the pending d
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleItem(m.selectedID())
	case key.Matches(msg, m.keys.DeleteNow):
		return m.deleteItem(m.selectedID())
	case key.Matches(msg, m.keys.Delete):
		if m.selectedID() != "" {
			m.pendingD = true
			m.statusMessage = "d-"
		}
	case key.Matches(msg, m.keys.MoveUp):
		return m.moveSelected(-1), nil
	case key.Matches(msg, m.keys.MoveDown):
		return m.moveSelected(1), nil
	case key.Matches(msg, m.keys.Add):
		return m.focusInput()
	case key.Matches(msg, m.keys.FilterAll):
		return m.applyFilter(todo.FilterAll)
	case key.Matches(msg, m.keys.FilterLive):
		return m.applyFilter(todo.FilterActive)
	case key.Matches(msg, m.keys.FilterDone):
		return m.applyFilter(todo.FilterCompleted)
	case key.Matches(msg, m.keys.FilterCycle):
		return m.applyFilter(m.state.Filter.Next())
	case key.Matches(msg, m.keys.Clear):
		return m.clearCompleted()
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// moveSelected shifts the selected item one visible row up (-1) or down (+1).
func (m Model) moveSelected(delta int) Model {
	id := m.selectedID()
	if id == "" {
		return m
	}
	var err error
	if m.state.Filter == todo.FilterAll {
		if delta < 0 {
			err = m.list.MoveUp(id)
		} else {
			err = m.list.MoveDown(id)
		}
	} else {
		// Hidden items keep their place; move relative to the visible rows.
		items := m.visible()
		i := clampCursor(m.cursor, len(items))
		switch {
		case delta < 0 && i > 0:
			err = m.list.Reorder(id, items[i-1].ID)
		case delta > 0 && i+2 < len(items):
			err = m.list.Reorder(id, items[i+2].ID)
		case delta > 0 && i+1 < len(items):
			err = m.list.Reorder(id, "")
		}
	}
	if err != nil {
		m.err = err
		return m
	}
	m = m.focusItem(id)
	m.statusMessage = "Reordered"
	return m
}

func clampCursor(cursor int, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

func (m Model) toggleItem(id string) (tea.Model, tea.Cmd) {
	if id == "" {
		return m, nil
	}
	it, err := m.list.Toggle(id)
	if err != nil {
		m.log.Debug("toggle ignored", "id", id, "error", err)
		return m, nil
	}
	m.log.Debug("item toggled", "id", id, "completed", it.Completed)
	m = m.focusItem(id)
	if it.Completed {
		m.statusMessage = "Marked Completed"
	} else {
		m.statusMessage = "Marked Active"
	}
	return m, nil
}

// deleteItem starts the removal transition; removalDoneMsg finishes it.
func (m Model) deleteItem(id string) (tea.Model, tea.Cmd) {
	if id == "" {
		return m, nil
	}
	it, ok := m.list.Get(id)
	if !ok || it.Removing {
		return m, nil
	}
	if err := m.list.Delete(id); err != nil {
		m.err = err
		return m, nil
	}
	m.log.Debug("item removing", "id", id)
	return m, m.scheduleRemoval(id)
}

func (m Model) scheduleRemoval(id string) tea.Cmd {
	return tea.Tick(m.removalDelay, func(time.Time) tea.Msg {
		return removalDoneMsg{id: id}
	})
}

// clearCompleted removes every completed item through the same path as a
// single delete.
func (m Model) clearCompleted() (tea.Model, tea.Cmd) {
	ids := m.list.ClearCompleted()
	if len(ids) == 0 {
		return m, nil
	}
	m.log.Debug("clearing completed", "count", len(ids))
	cmds := make([]tea.Cmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, m.scheduleRemoval(id))
	}
	m.statusMessage = fmt.Sprintf("Cleared %d completed", len(ids))
	return m, tea.Batch(cmds...)
}

func (m Model) applyFilter(f todo.Filter) (tea.Model, tea.Cmd) {
	err := todo.ApplyFilter(&m.state, m.list, f)
	var rej *todo.RejectedError
	if errors.As(err, &rej) {
		m.log.Info("filter rejected", "filter", f.String(), "notice", rej.Notice)
		return m.showNotice(rej.Notice)
	}
	if err != nil {
		m.err = err
		return m, nil
	}
	m.cursor = clampCursor(m.cursor, len(m.visible()))
	m.statusMessage = "Showing " + f.Label()
	return m, nil
}

func (m Model) showNotice(text string) (tea.Model, tea.Cmd) {
	m.noticeSeq++
	m.notice = text
	seq := m.noticeSeq
	return m, tea.Tick(m.noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.state.Theme = m.state.Theme.Toggle()
	m.styles = newStyles(m.state.Theme)
	m = m.ensureRenderer()
	m.log.Debug("theme toggled", "theme", m.state.Theme.Attribute())
	return m, nil
}

func (m Model) focusInput() (tea.Model, tea.Cmd) {
	m.mode = modeInput
	m.pendingD = false
	return m, m.textInput.Focus()
}

// submitInput adds the input text as a new item. Blank input is ignored.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	it, ok := m.list.Add(m.textInput.Value())
	if !ok {
		return m, nil
	}
	m.log.Debug("item added", "id", it.ID)
	m.textInput.Reset()
	m = m.focusItem(it.ID)
	m.statusMessage = "Added"
	return m, nil
}
