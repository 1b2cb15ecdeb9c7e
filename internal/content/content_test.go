package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/etbcor/tomo/internal/window"
)

func newStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New(%q): %v", dir, err)
	}
	return s
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedContent(t *testing.T) {
	s := newStore(t, "")

	for _, name := range []string{"about", "education", "skills-technical", "projects-other", "nasin-nanpa-ligatures"} {
		if _, err := s.Markdown(name); err != nil {
			t.Errorf("Markdown(%q): %v", name, err)
		}
	}
	for _, name := range []string{"about", "projects-classes", "kalama-sin", "webring-sike-pona", "playlists-genres"} {
		if l, err := s.Links(name); err != nil || len(l) == 0 {
			t.Errorf("Links(%q) = %d entries, %v", name, len(l), err)
		}
	}
}

func TestUnknownBlock(t *testing.T) {
	s := newStore(t, "")
	if _, err := s.Markdown("nope"); !errors.Is(err, ErrUnknownBlock) {
		t.Errorf("Markdown err = %v, want ErrUnknownBlock", err)
	}
	if _, err := s.Links("nope"); !errors.Is(err, ErrUnknownBlock) {
		t.Errorf("Links err = %v, want ErrUnknownBlock", err)
	}
	if _, err := s.Render("nope", 40); !errors.Is(err, ErrUnknownBlock) {
		t.Errorf("Render err = %v, want ErrUnknownBlock", err)
	}
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "about.md"), "overridden about")
	writeFile(t, filepath.Join(dir, "links.yaml"), "about:\n  - {label: home, route: /}\n")

	s := newStore(t, dir)
	if md, _ := s.Markdown("about"); md != "overridden about" {
		t.Errorf("about = %q", md)
	}
	links, _ := s.Links("about")
	if len(links) != 1 || links[0].Kind() != LinkRoute {
		t.Errorf("about links = %+v", links)
	}
	if _, err := s.Markdown("education"); err != nil {
		t.Errorf("embedded blocks should survive an override: %v", err)
	}
	if _, err := s.Links("kalama-sin"); err != nil {
		t.Errorf("embedded lists should survive an override: %v", err)
	}
}

func TestMissingOverrideDirUsesEmbedded(t *testing.T) {
	s := newStore(t, filepath.Join(t.TempDir(), "missing"))
	if _, err := s.Markdown("about"); err != nil {
		t.Fatal(err)
	}
}

func TestBadLinksFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "links.yaml"), "about: [")
	if _, err := New(dir); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestReloadDropsRenderCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	writeFile(t, path, "first")
	s := newStore(t, dir)

	out, err := s.Render("note", 40)
	if err != nil || !strings.Contains(ansi.Strip(out), "first") {
		t.Fatalf("Render = %q, %v", out, err)
	}

	writeFile(t, path, "second")
	if out, _ := s.Render("note", 40); !strings.Contains(ansi.Strip(out), "first") {
		t.Error("render should be cached until Reload")
	}
	if err := s.Reload(); err != nil {
		t.Fatal(err)
	}
	if out, _ := s.Render("note", 40); !strings.Contains(ansi.Strip(out), "second") {
		t.Errorf("after Reload: %q", ansi.Strip(out))
	}
}

func TestRenderMarkdown(t *testing.T) {
	s := newStore(t, "")
	out, err := s.Render("about", 50)
	if err != nil {
		t.Fatal(err)
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"Ethan", "etbcor", "Thanks"} {
		if !strings.Contains(plain, want) {
			t.Errorf("rendered about is missing %q", want)
		}
	}
}

func TestLinkKind(t *testing.T) {
	tests := []struct {
		link   Link
		kind   LinkKind
		target string
	}{
		{Link{Label: "x"}, LinkText, ""},
		{Link{Label: "x", URL: "https://a"}, LinkExternal, "https://a"},
		{Link{Label: "x", File: "https://f", URL: "https://a"}, LinkFile, "https://f"},
		{Link{Label: "x", Route: "/tp", File: "https://f"}, LinkRoute, "/tp"},
	}
	for _, tt := range tests {
		if got := tt.link.Kind(); got != tt.kind {
			t.Errorf("%+v Kind = %v, want %v", tt.link, got, tt.kind)
		}
		if got := tt.link.Target(); got != tt.target {
			t.Errorf("%+v Target = %q, want %q", tt.link, got, tt.target)
		}
	}
}

type recorder struct {
	external, files, routes []string
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		External: func(_, url string) { r.external = append(r.external, url) },
		File:     func(_, url string) { r.files = append(r.files, url) },
		Route:    func(path string) { r.routes = append(r.routes, path) },
	}
}

func TestDocumentSelection(t *testing.T) {
	s := newStore(t, "")
	var rec recorder
	d := s.LinkList("about", rec.handlers())

	if !d.Activate() {
		t.Fatal("Activate with no selection should pick the first link")
	}
	if len(rec.external) != 1 || !strings.Contains(rec.external[0], "discord") {
		t.Errorf("external = %v", rec.external)
	}

	d.Select(1)
	if l, _ := d.Selected(); l.Label != "email" {
		t.Errorf("selected %q, want email", l.Label)
	}
	d.Select(-2)
	if l, _ := d.Selected(); l.Label != "GitHub" {
		t.Errorf("selection should wrap, got %q", l.Label)
	}
}

func TestDocumentSkipsText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "links.yaml"), `
mixed:
  - {label: heading}
  - {label: tp, route: /tp}
  - {label: plain}
  - {label: doc, file: "https://docs/x"}
`)
	s := newStore(t, dir)
	var rec recorder
	d := s.LinkList("mixed", rec.handlers())
	d.Render(40, 10)

	if d.Click(window.Pos{Y: 0}) || d.Click(window.Pos{Y: 2}) {
		t.Error("clicking text lines should do nothing")
	}
	if !d.Click(window.Pos{X: 3, Y: 3}) || len(rec.files) != 1 {
		t.Errorf("file click: %v", rec.files)
	}
	d.Select(1)
	if !d.Activate() || len(rec.routes) != 1 || rec.routes[0] != "/tp" {
		t.Errorf("routes = %v", rec.routes)
	}
	if d.Click(window.Pos{Y: 99}) {
		t.Error("clicks below the list should do nothing")
	}
}

func TestDocumentHeaderOffsetsClicks(t *testing.T) {
	s := newStore(t, "")
	var rec recorder
	d := s.Document("about", "about", rec.handlers())

	out := d.Render(60, 30)
	lines := strings.Split(out, "\n")
	first := -1
	for i, l := range lines {
		if strings.Contains(ansi.Strip(l), "discord") {
			first = i
			break
		}
	}
	if first < 0 {
		t.Fatal("link list not rendered")
	}
	if !d.Click(window.Pos{Y: first + 1}) {
		t.Fatal("click on the email line was ignored")
	}
	if len(rec.external) != 1 || rec.external[0] != "mailto:etbcor@gmail.com" {
		t.Errorf("external = %v", rec.external)
	}
}

func TestChangesStartAtZero(t *testing.T) {
	s := newStore(t, "")
	if seq, err := s.Changes(); seq != 0 || err != nil {
		t.Errorf("Changes() = %d, %v", seq, err)
	}
	if err := s.Reload(); err != nil {
		t.Fatal(err)
	}
	if seq, _ := s.Changes(); seq != 0 {
		t.Error("only watched reloads are counted")
	}
}

func TestWatchWithoutDir(t *testing.T) {
	s := newStore(t, "")
	if err := s.Watch(context.Background(), nil); !errors.Is(err, ErrNoDir) {
		t.Errorf("Watch err = %v, want ErrNoDir", err)
	}
}

func TestWatchReloads(t *testing.T) {
	defer func(d time.Duration) { WatchDebounce = d }(WatchDebounce)
	WatchDebounce = 30 * time.Millisecond

	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	writeFile(t, path, "before")
	s := newStore(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan error, 16)
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, func(err error) { changed <- err }) }()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case err := <-changed:
			if err != nil {
				t.Fatalf("reload: %v", err)
			}
			break loop
		case <-tick.C:
			writeFile(t, path, "after")
		case <-deadline:
			t.Fatal("no reload after writing to the content dir")
		}
	}

	if md, _ := s.Markdown("note"); md != "after" {
		t.Errorf("note = %q, want after", md)
	}
	if seq, err := s.Changes(); seq == 0 || err != nil {
		t.Errorf("Changes() = %d, %v after a reload", seq, err)
	}
	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch returned %v", err)
	}
}
