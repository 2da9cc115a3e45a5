package cli

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/magdy/fawkes/tidytodo/internal/tui"
)

func runRoot(t *testing.T, args ...string) (tui.Options, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TIDYTODO_CONFIG", "")

	var got tui.Options
	app := &App{run: func(o tui.Options) error {
		got = o
		return nil
	}}
	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return got, err
}

func TestRoot_PassesSeedsAndFlags(t *testing.T) {
	opts, err := runRoot(t, "--theme", "dark", "--filter", "active", "Buy milk", "Walk dog")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !slices.Equal(opts.Seeds, []string{"Buy milk", "Walk dog"}) {
		t.Fatalf("unexpected seeds: %v", opts.Seeds)
	}
	if opts.UI.Theme != "dark" || opts.UI.Filter != "active" {
		t.Fatalf("flags not applied: %+v", opts.UI)
	}
	if opts.Logger == nil {
		t.Fatalf("expected a logger")
	}
}

func TestRoot_RejectsBadTheme(t *testing.T) {
	if _, err := runRoot(t, "--theme", "sepia"); err == nil {
		t.Fatalf("expected invalid theme to fail")
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "tidytodo ") {
		t.Fatalf("unexpected version output %q", out.String())
	}
}
