// Package content holds the text shown inside windows: markdown blocks
// rendered with glamour and YAML link lists. Both are embedded in the binary
// and can be overridden from a directory on disk.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"github.com/etbcor/tomo/internal/logging"
)

//go:embed blocks/*.md links.yaml
var embedded embed.FS

// ErrUnknownBlock is returned for names that are neither embedded nor
// present in the override directory.
var ErrUnknownBlock = errors.New("unknown content block")

const linksFile = "links.yaml"

var logger = logging.For("content")

type renderKey struct {
	name  string
	width int
}

// Store is the set of blocks and link lists shown by the desktop. It is safe
// for concurrent use; SSH and web sessions share one store.
type Store struct {
	mu       sync.RWMutex
	dir      string
	blocks   map[string]string
	links    map[string][]Link
	rendered map[renderKey]string

	renderMu  sync.Mutex
	renderers map[int]*glamour.TermRenderer

	// seq counts reloads made by Watch; watchErr is the result of the last.
	seq      uint64
	watchErr error
}

// New loads the embedded content and overlays files from dir. An empty dir
// uses the embedded content only.
func New(dir string) (*Store, error) {
	s := &Store{
		dir:       dir,
		renderers: map[int]*glamour.TermRenderer{},
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the override directory.
func (s *Store) Dir() string { return s.dir }

// Reload reads the embedded content and the override directory again and
// drops every cached rendering.
func (s *Store) Reload() error {
	blocks, links, err := loadFS(embedded)
	if err != nil {
		return fmt.Errorf("loading embedded content: %w", err)
	}
	if s.dir != "" {
		if _, err := os.Stat(s.dir); err == nil {
			over, overLinks, err := loadFS(os.DirFS(s.dir))
			if err != nil {
				return fmt.Errorf("loading content from %s: %w", s.dir, err)
			}
			for name, md := range over {
				blocks[name] = md
			}
			for name, l := range overLinks {
				links[name] = l
			}
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("reading content dir: %w", err)
		}
	}

	s.mu.Lock()
	s.blocks = blocks
	s.links = links
	s.rendered = map[renderKey]string{}
	s.mu.Unlock()

	logger.Debug("content loaded", "blocks", len(blocks), "links", len(links), "dir", s.dir)
	return nil
}

// Changes returns the number of reloads made by Watch and the error of the
// latest one. Desktops compare seq with the value they last saw.
func (s *Store) Changes() (seq uint64, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq, s.watchErr
}

func (s *Store) noteChange(err error) {
	s.mu.Lock()
	s.seq++
	s.watchErr = err
	s.mu.Unlock()
}

// loadFS reads markdown blocks from blocks/*.md (or *.md at the root of an
// override dir) and link lists from links.yaml.
func loadFS(fsys fs.FS) (map[string]string, map[string][]Link, error) {
	blocks := map[string]string{}
	for _, pattern := range []string{"blocks/*.md", "*.md"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, err
		}
		for _, m := range matches {
			data, err := fs.ReadFile(fsys, m)
			if err != nil {
				return nil, nil, err
			}
			blocks[strings.TrimSuffix(filepath.Base(m), ".md")] = string(data)
		}
	}

	links := map[string][]Link{}
	data, err := fs.ReadFile(fsys, linksFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, nil, err
	default:
		if err := yaml.Unmarshal(data, &links); err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", linksFile, err)
		}
	}
	return blocks, links, nil
}

// Names returns every block name in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.blocks))
	for n := range s.blocks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Markdown returns the source of the block called name.
func (s *Store) Markdown(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	md, ok := s.blocks[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownBlock, name)
	}
	return md, nil
}

// Links returns the link list called name.
func (s *Store) Links(name string) ([]Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.links[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBlock, name)
	}
	return l, nil
}

// Render returns the block called name rendered for width columns. Results
// are cached until the next Reload.
func (s *Store) Render(name string, width int) (string, error) {
	key := renderKey{name, width}
	s.mu.RLock()
	out, ok := s.rendered[key]
	s.mu.RUnlock()
	if ok {
		return out, nil
	}

	md, err := s.Markdown(name)
	if err != nil {
		return "", err
	}
	r, err := s.renderer(width)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	s.renderMu.Lock()
	out, err = r.Render(md)
	s.renderMu.Unlock()
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	out = strings.Trim(out, "\n")

	s.mu.Lock()
	s.rendered[key] = out
	s.mu.Unlock()
	return out, nil
}

// renderer returns a glamour renderer wrapping at width, one per width.
func (s *Store) renderer(width int) (*glamour.TermRenderer, error) {
	if width <= 0 {
		width = 80
	}
	s.renderMu.Lock()
	defer s.renderMu.Unlock()
	if r, ok := s.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	s.renderers[width] = r
	return r, nil
}
