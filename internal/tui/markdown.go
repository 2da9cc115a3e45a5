package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/magdy/fawkes/tidytodo/internal/todo"
)

// glamour pads documents with a two cell margin on each side.
const glamourMargin = 4

type markdown struct {
	renderer *glamour.TermRenderer
	theme    todo.Theme
	width    int
}

func newMarkdownRenderer(theme todo.Theme, width int) (*glamour.TermRenderer, error) {
	wrap := width + glamourMargin
	if wrap < 0 {
		wrap = 0
	}
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle(theme)),
		glamour.WithWordWrap(wrap),
	)
}

// ensure rebuilds the renderer when the theme or label width changed.
func (md markdown) ensure(theme todo.Theme, width int) (markdown, error) {
	if md.renderer != nil && md.theme == theme && md.width == width {
		return md, nil
	}
	r, err := newMarkdownRenderer(theme, width)
	if err != nil {
		return md, err
	}
	return markdown{renderer: r, theme: theme, width: width}, nil
}

// render returns the label lines for raw, each at most width cells wide.
// Without a renderer the text is wrapped as is.
func (md markdown) render(raw string, width int) []string {
	if md.renderer == nil {
		return wrapPlain(raw, width)
	}
	out, err := md.renderer.Render(raw + "\n")
	if err != nil {
		return wrapPlain(raw, width)
	}
	var lines []string
	for _, ln := range strings.Split(out, "\n") {
		ln = trimCells(ln)
		if xansi.Strip(ln) == "" {
			continue
		}
		lines = append(lines, xansi.Truncate(ln, width, "…"))
	}
	if len(lines) == 0 {
		return wrapPlain(raw, width)
	}
	return lines
}

// trimCells drops blank cells at both ends of an ANSI styled line.
func trimCells(ln string) string {
	plain := xansi.Strip(ln)
	lead := len(plain) - len(strings.TrimLeft(plain, " "))
	end := xansi.StringWidth(strings.TrimRight(plain, " "))
	if end <= lead {
		return ""
	}
	return xansi.Cut(ln, lead, end)
}

func wrapPlain(raw string, width int) []string {
	if width <= 0 {
		return []string{raw}
	}
	return strings.Split(xansi.Wrap(raw, width, ""), "\n")
}
