package window

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/etbcor/tomo/internal/state"
)

func TestTabsSetActive(t *testing.T) {
	tabs := NewTabs("A", Panel{"A", text("panel a")}, Panel{"B", text("panel b")})

	changes := 0
	tabs.Active.Subscribe(func(string) { changes++ })

	if !tabs.SetActive("B") {
		t.Fatal("SetActive(B) should report a change")
	}
	if tabs.Visible("A") || !tabs.Visible("B") {
		t.Error("only B should be visible")
	}
	if tabs.SetActive("B") {
		t.Error("SetActive(B) again should be a no-op")
	}
	if tabs.SetActive("missing") {
		t.Error("unknown labels should be ignored")
	}
	if changes != 1 || tabs.Active.Get() != "B" {
		t.Errorf("changes = %d active = %q", changes, tabs.Active.Get())
	}
}

func TestTabsExactlyOneVisible(t *testing.T) {
	tabs := NewTabs("Other", Panel{"Technical", text("")}, Panel{"Audio / Visual", text("")}, Panel{"Other", text("")})
	for _, label := range tabs.Labels() {
		tabs.SetActive(label)
		visible := 0
		for _, l := range tabs.Labels() {
			if tabs.Visible(l) {
				visible++
			}
		}
		if visible != 1 {
			t.Errorf("after SetActive(%q), %d panels visible", label, visible)
		}
	}
}

func TestNewTabsUnknownActive(t *testing.T) {
	tabs := NewTabs("nope", Panel{"mi", text("")}, Panel{"jan", text("")})
	if tabs.Active.Get() != "mi" {
		t.Errorf("active = %q, want first panel", tabs.Active.Get())
	}
}

func TestTabsCycle(t *testing.T) {
	tabs := NewTabs("A", Panel{"A", text("")}, Panel{"B", text("")}, Panel{"C", text("")})
	tabs.Cycle(-1)
	if got := tabs.Active.Get(); got != "C" {
		t.Errorf("Cycle(-1) from A = %q, want C", got)
	}
	tabs.Cycle(2)
	if got := tabs.Active.Get(); got != "B" {
		t.Errorf("Cycle(2) from C = %q, want B", got)
	}
}

func TestTabAt(t *testing.T) {
	tabs := NewTabs("A", Panel{"From CS Classes", text("")}, Panel{"Other Projects", text("")})
	// " From CS Classes " spans 0..17, separator at 17, second tab from 18.
	tests := []struct {
		x     int
		label string
		ok    bool
	}{
		{0, "From CS Classes", true},
		{16, "From CS Classes", true},
		{17, "", false},
		{18, "Other Projects", true},
		{60, "", false},
	}
	for _, tt := range tests {
		label, ok := tabs.TabAt(tt.x, 80)
		if label != tt.label || ok != tt.ok {
			t.Errorf("TabAt(%d) = %q, %v; want %q, %v", tt.x, label, ok, tt.label, tt.ok)
		}
	}
}

func TestTitleParts(t *testing.T) {
	tests := []struct {
		title  string
		prefix string
		rest   string
		ok     bool
	}{
		{"Loading Serenity", "Loading", "Serenity", true},
		{"Obtain Joy", "Obtain", "Joy", true},
		{"o pona", "o", "pona", true},
		{"o tawa insa", "", "o tawa insa", false},
		{"o", "", "o", false},
		{"About Me", "", "About Me", false},
		{"Loading", "", "Loading", false},
		{"Uh-oh! The stack overflowed", "", "Uh-oh! The stack overflowed", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			prefix, rest, ok := TitleParts(tt.title)
			if prefix != tt.prefix || rest != tt.rest || ok != tt.ok {
				t.Errorf("TitleParts(%q) = %q, %q, %v", tt.title, prefix, rest, ok)
			}
		})
	}
}

func TestScrollDecor(t *testing.T) {
	long := strings.Repeat("line\n", 20)
	w := New("skills-win", "Skills", NewPage(text(long)), At(0, 0),
		state.NewCell(Size{10, 5}), state.NewCell(false), WithDecor(DecorScroll))
	container := Rect{0, 0, 80, 40}

	w.Render(container, false)
	if !w.ScrollBy(100) {
		t.Fatal("expected scroll to move")
	}
	if got := w.ScrollOffset(); got != 15 {
		t.Errorf("scroll = %d, want 15", got)
	}
	if w.ScrollBy(1) {
		t.Error("scrolling past the end should be a no-op")
	}

	plain := newTestWindow("a-win")
	plain.Render(container, false)
	if plain.ScrollBy(1) {
		t.Error("windows without scroll decor should not scroll")
	}
}

func TestRenderHasExactBounds(t *testing.T) {
	container := Rect{0, 0, 120, 50}
	windows := []*Window{
		newTestWindow("a-win"),
		New("t", "Loading Hope", NewTabs("B", Panel{"A", text("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")}, Panel{"B", text("b\nb\nb\nb\nb\nb\nb\nb\nb\nb\nb")}),
			At(1, 1), state.NewCell(Size{12, 4}), state.NewCell(false), WithDecor(DecorRainbow|DecorDiag)),
		New("n", "A very long title that will not fit in the bar", NewPage(text("x")),
			At(0, 0), state.NewCell(Size{6, 1}), state.NewCell(false)),
	}

	for _, w := range windows {
		for _, focused := range []bool{false, true} {
			out := w.Render(container, focused)
			b := w.Bounds(container)
			lines := strings.Split(out, "\n")
			if len(lines) != b.H {
				t.Errorf("%s: %d lines, want %d", w.ID, len(lines), b.H)
			}
			for i, l := range lines {
				if got := ansi.StringWidth(l); got != b.W {
					t.Errorf("%s line %d: width %d, want %d", w.ID, i, got, b.W)
				}
			}
		}
	}
}

func TestHitTest(t *testing.T) {
	container := Rect{0, 0, 100, 40}
	tabs := NewTabs("A", Panel{"A", text("")}, Panel{"B", text("")})
	w := New("t", "Skills", tabs, At(10, 5), state.NewCell(Size{20, 6}), state.NewCell(false))
	b := w.Bounds(container) // {10 5 22 9}

	tests := []struct {
		name string
		p    Pos
		want Hit
	}{
		{"outside", Pos{0, 0}, Hit{}},
		{"title", Pos{12, 5}, Hit{Kind: HitTitleBar}},
		{"expand", Pos{b.X + b.W - 8, 5}, Hit{Kind: HitControl, Control: ControlExpand}},
		{"close", Pos{b.X + b.W - 3, 5}, Hit{Kind: HitControl, Control: ControlClose}},
		{"tab B", Pos{15, 6}, Hit{Kind: HitTab, Tab: "B"}},
		{"content", Pos{13, 9}, Hit{Kind: HitContent, Local: Pos{2, 2}}},
		{"left border", Pos{10, 9}, Hit{Kind: HitFrame}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.HitTest(tt.p, container); got != tt.want {
				t.Errorf("HitTest(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	block := "abcd\nefgh\nijkl"
	tests := []struct {
		name   string
		x, y   int
		want   string
		wx, wy int
	}{
		{"inside", 1, 1, block, 1, 1},
		{"left", -2, 0, "cd\ngh\nkl", 0, 0},
		{"top", 0, -1, "efgh\nijkl", 0, 0},
		{"right", 8, 0, "ab\nef\nij", 8, 0},
		{"gone", 20, 0, "", 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, x, y := Clip(block, tt.x, tt.y, 10, 5)
			if got != tt.want || x != tt.wx || y != tt.wy {
				t.Errorf("Clip = %q at (%d,%d), want %q at (%d,%d)", got, x, y, tt.want, tt.wx, tt.wy)
			}
		})
	}
}
