// Package logging sets up the structured loggers used across tomo.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu     sync.Mutex
	out    io.Writer = os.Stderr
	level            = log.InfoLevel
	byName           = map[string]*log.Logger{}
)

func init() {
	if env := os.Getenv("TOMO_LOG_LEVEL"); env != "" {
		if l, err := log.ParseLevel(strings.ToLower(env)); err == nil {
			level = l
		}
	}
}

// For returns the logger for a component, creating it on first use.
func For(component string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := byName[component]; ok {
		return l
	}
	l := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          component,
		Level:           level,
	})
	byName[component] = l
	return l
}

// SetLevel changes the level of every component logger.
func SetLevel(l log.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	for _, lg := range byName {
		lg.SetLevel(l)
	}
}

// SetOutput redirects every component logger to w. The desktop sends logs to
// a file while it owns the terminal.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	for _, lg := range byName {
		lg.SetOutput(w)
	}
}

// OpenFile redirects logging to the file at path and returns a function that
// closes it.
func OpenFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	SetOutput(f)
	return f.Close, nil
}
