package todo

import (
	"fmt"
	"strings"
)

type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Attribute is the document-wide theme marker.
func (t Theme) Attribute() string {
	return "theme-" + t.String()
}

// Icon is the glyph shown on the toggle control: it offers the other theme.
func (t Theme) Icon() string {
	if t == ThemeDark {
		return "☀"
	}
	return "☾"
}

// ParseTheme accepts "light" or "dark". "auto" and "" report ok=false so the
// caller can fall back to terminal detection.
func ParseTheme(s string) (Theme, bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, true, nil
	case "dark":
		return ThemeDark, true, nil
	case "", "auto":
		return ThemeLight, false, nil
	default:
		return ThemeLight, false, fmt.Errorf("unknown theme %q (want light|dark|auto)", s)
	}
}
