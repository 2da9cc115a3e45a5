package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/magdy/fawkes/tidytodo/internal/todo"
	"github.com/muesli/termenv"
)

// palette is one colour set per theme. Values follow the light/dark pair of
// the original design (grayish blue text, bright blue accent).
type palette struct {
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Faint       lipgloss.Color
	Accent      lipgloss.Color
	Surface     lipgloss.Color
	Check       lipgloss.Color
	Danger      lipgloss.Color
	Placeholder lipgloss.Color
}

var (
	lightPalette = palette{
		Text:        "#494C6B",
		Muted:       "#9495A5",
		Faint:       "#D1D2DA",
		Accent:      "#3A7CFD",
		Surface:     "#FAFAFA",
		Check:       "#55DDFF",
		Danger:      "#C0392B",
		Placeholder: "#9495A5",
	}
	darkPalette = palette{
		Text:        "#C8CBE7",
		Muted:       "#5B5E7E",
		Faint:       "#393A4B",
		Accent:      "#3A7CFD",
		Surface:     "#25273D",
		Check:       "#C058F3",
		Danger:      "#F38BA8",
		Placeholder: "#767992",
	}
)

func paletteFor(t todo.Theme) palette {
	if t == todo.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

type styles struct {
	Title        lipgloss.Style
	Attribute    lipgloss.Style
	Control      lipgloss.Style
	ControlOn    lipgloss.Style
	Checkbox     lipgloss.Style
	CheckboxDone lipgloss.Style
	Label        lipgloss.Style
	LabelDone    lipgloss.Style
	Removing     lipgloss.Style
	Delete       lipgloss.Style
	Cursor       lipgloss.Style
	Placeholder  lipgloss.Style
	Muted        lipgloss.Style
	Notice       lipgloss.Style
	Error        lipgloss.Style
}

func newStyles(t todo.Theme) styles {
	p := paletteFor(t)
	return styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Attribute:    lipgloss.NewStyle().Foreground(p.Muted),
		Control:      lipgloss.NewStyle().Foreground(p.Muted),
		ControlOn:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Checkbox:     lipgloss.NewStyle().Foreground(p.Faint),
		CheckboxDone: lipgloss.NewStyle().Bold(true).Foreground(p.Check),
		Label:        lipgloss.NewStyle().Foreground(p.Text),
		LabelDone:    lipgloss.NewStyle().Strikethrough(true).Foreground(p.Faint),
		Removing:     lipgloss.NewStyle().Strikethrough(true).Faint(true).Foreground(p.Muted),
		Delete:       lipgloss.NewStyle().Foreground(p.Muted),
		Cursor:       lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Placeholder:  lipgloss.NewStyle().Italic(true).Foreground(p.Placeholder),
		Muted:        lipgloss.NewStyle().Foreground(p.Muted),
		Notice:       lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Error:        lipgloss.NewStyle().Bold(true).Foreground(p.Danger),
	}
}

// glamourStyle names the glamour standard style matching the theme.
func glamourStyle(t todo.Theme) string {
	return t.String()
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
// Only NO_COLOR is honoured; otherwise the terminal's capabilities decide.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if (strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit")) && profile != termenv.Ascii {
		profile = termenv.TrueColor
	}
	lipgloss.SetColorProfile(profile)
}

// initialTheme resolves the configured theme; "auto" asks the terminal.
func initialTheme(setting string) (todo.Theme, error) {
	t, ok, err := todo.ParseTheme(setting)
	if err != nil {
		return todo.ThemeLight, err
	}
	if ok {
		return t, nil
	}
	if lipgloss.HasDarkBackground() {
		return todo.ThemeDark, nil
	}
	return todo.ThemeLight, nil
}
