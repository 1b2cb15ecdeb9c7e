package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/content"
)

func TestRequestedPath(t *testing.T) {
	tests := []struct {
		name string
		cmd  []string
		want string
	}{
		{"no command", nil, ""},
		{"page", []string{"/music"}, "/music"},
		{"trailing slash", []string{"/tp/nasin_nanpa/"}, "/tp/nasin_nanpa"},
		{"not a path", []string{"attach", "x"}, ""},
		{"padded", []string{"  /insa "}, "/insa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := requestedPath(tt.cmd); got != tt.want {
				t.Errorf("requestedPath(%q) = %q, want %q", tt.cmd, got, tt.want)
			}
		})
	}
}

func TestNewRuntime(t *testing.T) {
	cfg := config.DefaultConfig()
	rt, err := NewRuntime(cfg, "/tp")
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	if rt.Beacon.Enabled() {
		t.Error("beacon should be off without an endpoint")
	}

	d := rt.NewDesk(context.Background(), 90, 30, "s1", "")
	if d.Page.Path != "/tp" {
		t.Errorf("default page = %q, want /tp", d.Page.Path)
	}
	if d.Width != 90 || d.Height != 30 || d.SessionID != "s1" {
		t.Errorf("desk = %dx%d %q", d.Width, d.Height, d.SessionID)
	}

	d = rt.NewDesk(context.Background(), 90, 30, "s2", "/music")
	if d.Page.Path != "/music" {
		t.Errorf("page = %q, want /music", d.Page.Path)
	}
}

func TestNewRuntimeRejectsBadEndpoint(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analytics.Endpoint = "ftp://example.com/count"
	if _, err := NewRuntime(cfg, ""); err == nil {
		t.Error("expected an error for a non-http endpoint")
	}
}

func TestOneReloadPerChangeAcrossDesks(t *testing.T) {
	defer func(d time.Duration) { content.WatchDebounce = d }(content.WatchDebounce)
	content.WatchDebounce = 30 * time.Millisecond

	cfg := config.DefaultConfig()
	cfg.Content.Dir = t.TempDir()
	cfg.Content.Watch = true
	rt, err := NewRuntime(cfg, "")
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	rt.Sampler = nil

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, id := range []string{"s1", "s2", "s3"} {
		rt.NewDesk(ctx, 80, 24, id, "").Init()
	}
	rt.Start(ctx)

	note := filepath.Join(cfg.Content.Dir, "note.md")
	deadline := time.Now().Add(5 * time.Second)
	seq, _ := rt.Store.Changes()
	for seq == 0 {
		if time.Now().After(deadline) {
			t.Fatal("content dir change was not picked up")
		}
		if err := os.WriteFile(note, []byte("hello"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(500 * time.Millisecond)
		seq, _ = rt.Store.Changes()
	}

	time.Sleep(10 * content.WatchDebounce)
	if got, _ := rt.Store.Changes(); got != seq || seq != 1 {
		t.Errorf("reloads = %d then %d, want a single reload", seq, got)
	}
}
