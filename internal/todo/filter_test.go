package todo

import (
	"errors"
	"slices"
	"testing"
)

func texts(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Text)
	}
	return out
}

func TestApplyFilter_RejectsEmptyActive(t *testing.T) {
	l := newTestList()
	a, _ := l.Add("a")
	b, _ := l.Add("b")
	l.Toggle(a.ID)
	l.Toggle(b.ID)

	st := State{Filter: FilterCompleted}
	before := texts(Visible(st, l))

	err := ApplyFilter(&st, l, FilterActive)
	var rej *RejectedError
	if !errors.As(err, &rej) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
	if rej.Notice != "No active items left!" {
		t.Fatalf("unexpected notice %q", rej.Notice)
	}
	if st.Filter != FilterCompleted {
		t.Fatalf("expected filter unchanged, got %v", st.Filter)
	}
	if got := texts(Visible(st, l)); !slices.Equal(got, before) {
		t.Fatalf("visible set changed: %v -> %v", before, got)
	}
}

func TestApplyFilter_RejectsEmptyCompleted(t *testing.T) {
	l := newTestList()
	l.Add("a")

	st := State{}
	err := ApplyFilter(&st, l, FilterCompleted)
	var rej *RejectedError
	if !errors.As(err, &rej) || rej.Notice != "No completed items left!" {
		t.Fatalf("expected completed rejection, got %v", err)
	}
	if st.Filter != FilterAll {
		t.Fatalf("expected filter unchanged, got %v", st.Filter)
	}

	// Same on an empty list.
	if err := ApplyFilter(&st, NewList(), FilterActive); err == nil {
		t.Fatalf("expected active rejection on empty list")
	}
	if err := ApplyFilter(&st, NewList(), FilterAll); err != nil {
		t.Fatalf("all must always apply: %v", err)
	}
}

func TestScenario_BuyMilkWalkDog(t *testing.T) {
	l := newTestList()
	st := State{}

	milk, _ := l.Add("Buy milk")
	l.Add("Walk dog")
	if l.ActiveCount() != 2 {
		t.Fatalf("expected 2 active, got %d", l.ActiveCount())
	}

	l.Toggle(milk.ID)
	if l.ActiveCount() != 1 {
		t.Fatalf("expected 1 active, got %d", l.ActiveCount())
	}

	if err := ApplyFilter(&st, l, FilterCompleted); err != nil {
		t.Fatalf("apply completed: %v", err)
	}
	if got := texts(Visible(st, l)); !slices.Equal(got, []string{"Buy milk"}) {
		t.Fatalf("expected only Buy milk visible, got %v", got)
	}

	for _, id := range l.ClearCompleted() {
		l.Remove(id)
	}
	if l.ActiveCount() != 1 || l.Len() != 1 {
		t.Fatalf("expected 1 item left, got len=%d active=%d", l.Len(), l.ActiveCount())
	}
	if got := texts(l.Items()); !slices.Equal(got, []string{"Walk dog"}) {
		t.Fatalf("expected Walk dog to remain, got %v", got)
	}
}

func TestParseFilter(t *testing.T) {
	cases := map[string]Filter{
		"":          FilterAll,
		"All":       FilterAll,
		"active":    FilterActive,
		"live":      FilterActive,
		"COMPLETED": FilterCompleted,
	}
	for in, want := range cases {
		got, err := ParseFilter(in)
		if err != nil || got != want {
			t.Fatalf("ParseFilter(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFilter("bogus"); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
	if FilterCompleted.Next() != FilterAll || FilterAll.Next() != FilterActive {
		t.Fatalf("unexpected filter cycle")
	}
}

func TestTheme_Toggle(t *testing.T) {
	th := ThemeLight
	if th.Attribute() != "theme-light" || th.Icon() != "☾" {
		t.Fatalf("unexpected light theme: %s %s", th.Attribute(), th.Icon())
	}
	th = th.Toggle()
	if th != ThemeDark || th.Attribute() != "theme-dark" || th.Icon() != "☀" {
		t.Fatalf("unexpected dark theme: %s %s", th.Attribute(), th.Icon())
	}
	if th.Toggle().Toggle() != th {
		t.Fatalf("double toggle should restore")
	}

	if got, ok, err := ParseTheme("Dark"); err != nil || !ok || got != ThemeDark {
		t.Fatalf("ParseTheme(Dark) = %v %v %v", got, ok, err)
	}
	if _, ok, err := ParseTheme("auto"); err != nil || ok {
		t.Fatalf("auto should defer to detection, got ok=%v err=%v", ok, err)
	}
	if _, _, err := ParseTheme("sepia"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}
