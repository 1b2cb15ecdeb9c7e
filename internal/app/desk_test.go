package app

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/etbcor/tomo/internal/content"
)

func newTestDesk(t *testing.T, path string) *Desk {
	t.Helper()
	store, err := content.New("")
	if err != nil {
		t.Fatalf("content.New: %v", err)
	}
	d := New(Options{Store: store, Path: path, Rand: rand.New(rand.NewPCG(7, 7)), SessionID: "test"})
	d.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return d
}

func TestNavigationIsDeferred(t *testing.T) {
	d := newTestDesk(t, "")
	if d.Page.Path != "/" {
		t.Fatalf("start page = %q", d.Page.Path)
	}

	d.RequestNavigation("/music/")
	if d.Page.Path != "/" {
		t.Error("navigation applied before the event finished")
	}
	if p, ok := d.PendingNavigation(); !ok || p != "/music/" {
		t.Errorf("pending = %q, %v", p, ok)
	}

	d.ApplyNavigation()
	if d.Page.Path != "/music" {
		t.Errorf("page = %q, want /music", d.Page.Path)
	}
	if _, ok := d.PendingNavigation(); ok {
		t.Error("pending navigation not cleared")
	}
	if cmd := d.ApplyNavigation(); cmd != nil {
		t.Error("nothing pending should yield no command")
	}
}

func TestNavigateResetsFocus(t *testing.T) {
	d := newTestDesk(t, "/")
	d.CycleFocus(1)
	if d.FocusedWindow() == nil {
		t.Fatal("no window focused")
	}
	d.Update(NavigateMsg{Path: "/does/not/exist"})
	if d.Focused != nil {
		t.Error("focus should not survive a page change")
	}
	if d.Page.Window("loading-win").Title != "Page Not Found" {
		t.Error("unknown path should show the not found page")
	}
}

func TestCycleFocus(t *testing.T) {
	d := newTestDesk(t, "/music")
	ring := d.Page.FocusRing()

	d.CycleFocus(-1)
	if d.Focused != ring[len(ring)-1] {
		t.Errorf("first shift+tab focused %q", d.Focused.ID)
	}
	d.CycleFocus(1)
	if d.Focused != ring[0] {
		t.Errorf("wrap focused %q, want %q", d.Focused.ID, ring[0].ID)
	}
	if d.Page.Top() != ring[0] {
		t.Error("focused window should be raised")
	}
}

func TestFocusedWindowForgetsClosed(t *testing.T) {
	d := newTestDesk(t, "/")
	d.CycleFocus(1)
	d.Focused.Close()
	if d.FocusedWindow() != nil {
		t.Error("closed window still focused")
	}
}

func TestExternalLinkNotification(t *testing.T) {
	d := newTestDesk(t, "/")
	d.OpenExternal("GitHub", "https://github.com/ETBCOR")

	if len(d.Notifications) != 1 {
		t.Fatalf("%d notifications", len(d.Notifications))
	}
	n := d.Notifications[0]
	if n.Kind != NotifyLink || n.URL != "https://github.com/ETBCOR" {
		t.Errorf("notification = %+v", n)
	}
	if out := n.Render(60); !strings.Contains(out, "\x1b]8;;https://github.com/ETBCOR") {
		t.Error("notification should carry an OSC 8 hyperlink")
	}
}

func TestCleanupNotifications(t *testing.T) {
	d := newTestDesk(t, "/")
	d.ShowNotification(NotifyInfo, "old", "")
	d.ShowNotification(NotifyLink, "newer", "https://example.com")

	d.CleanupNotifications(time.Now().Add(d.Notifications[0].Duration + time.Millisecond))
	if len(d.Notifications) != 1 || d.Notifications[0].Message != "newer" {
		t.Errorf("left = %+v", d.Notifications)
	}
}

func TestContentChangedNotifies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want NotifyKind
	}{
		{"reloaded", nil, NotifySuccess},
		{"failed", errors.New("bad yaml"), NotifyError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDesk(t, "/")
			d.Update(ContentChangedMsg{Err: tt.err})
			if len(d.Notifications) != 1 || d.Notifications[0].Kind != tt.want {
				t.Errorf("notifications = %+v", d.Notifications)
			}
		})
	}
}

func TestSharedReloadReachesEveryDesk(t *testing.T) {
	defer func(d time.Duration) { content.WatchDebounce = d }(content.WatchDebounce)
	content.WatchDebounce = 30 * time.Millisecond

	dir := t.TempDir()
	note := filepath.Join(dir, "note.md")
	if err := os.WriteFile(note, []byte("before"), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := content.New(dir)
	if err != nil {
		t.Fatal(err)
	}
	desks := []*Desk{
		New(Options{Store: store, SessionID: "a"}),
		New(Options{Store: store, SessionID: "b"}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = store.Watch(ctx, nil)
		close(done)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for seq, _ := store.Changes(); seq == 0; seq, _ = store.Changes() {
		if time.Now().After(deadline) {
			t.Fatal("store was not reloaded")
		}
		if err := os.WriteFile(note, []byte("after"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(50 * time.Millisecond)
	}
	cancel()
	<-done

	for _, d := range desks {
		d.Update(FrameMsg(time.Now()))
		d.Update(FrameMsg(time.Now()))
		if len(d.Notifications) != 1 || d.Notifications[0].Kind != NotifySuccess {
			t.Errorf("desk %s notifications = %+v", d.SessionID, d.Notifications)
		}
	}
}

func TestLauncher(t *testing.T) {
	l := NewLauncher()

	if got := len(l.Matches()); got == 0 {
		t.Fatal("empty query should list every page")
	}

	l.SetQuery("kalama")
	if r, ok := l.Selected(); !ok || r.Path != "/tp/kalama_sin" {
		t.Errorf("best match = %+v", r)
	}

	l.SetQuery("/zzz")
	if len(l.Matches()) != 0 {
		t.Fatalf("matches = %v", l.Matches())
	}
	if p, ok := l.Choice(); !ok || p != "/zzz" {
		t.Errorf("Choice() = %q, %v", p, ok)
	}

	l.SetQuery("qqq")
	if _, ok := l.Choice(); ok {
		t.Error("a query that is not a path and matches nothing opens nothing")
	}
}

func TestLauncherRanking(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"nasin", "/tp/nasin_nanpa"},
		{"sin", "/tp/kalama_sin"},
		{"pona", "/tp"},
		{"Music", "/music"},
		{"/tp", "/tp"},
		{"ksin", "/tp/kalama_sin"},
	}
	l := NewLauncher()
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			l.SetQuery(tt.query)
			if r, ok := l.Selected(); !ok || r.Path != tt.want {
				t.Errorf("best match for %q = %q, want %q", tt.query, r.Path, tt.want)
			}
		})
	}
}

func TestLauncherMoveWraps(t *testing.T) {
	l := NewLauncher()
	n := len(l.Matches())
	l.Move(-1)
	if r, _ := l.Selected(); r.Path != l.Matches()[n-1].Path {
		t.Errorf("selected %q", r.Path)
	}
}

func TestRenderFillsTerminal(t *testing.T) {
	d := newTestDesk(t, "/portfolio")
	d.ShowHelp = true
	d.Launcher.Show()
	d.OpenExternal("x", "https://example.com")

	out := d.Render()
	if h := lipgloss.Height(out); h != 30 {
		t.Errorf("height = %d, want 30", h)
	}
}

func TestHelpListsBindings(t *testing.T) {
	d := newTestDesk(t, "/")
	out := d.RenderHelp()
	for _, want := range []string{"Close window", "Open page launcher", "Move window"} {
		if !strings.Contains(out, want) {
			t.Errorf("help is missing %q", want)
		}
	}
}

func TestBeaconDisabledByDefault(t *testing.T) {
	d := newTestDesk(t, "/")
	if cmd := d.Navigate("/tp"); cmd != nil {
		t.Error("no beacon configured, no command expected")
	}
}
