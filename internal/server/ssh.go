// Package server serves tomo desktops to remote terminals.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"github.com/etbcor/tomo/internal/app"
	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/desktop"
	"github.com/etbcor/tomo/internal/input"
	tlog "github.com/etbcor/tomo/internal/logging"
)

var logger = tlog.For("ssh")

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string
}

// HostKeyPath returns the host key used when none is configured.
func HostKeyPath() (string, error) {
	path, err := xdg.DataFile(filepath.Join("tomo", "ssh_host_ed25519"))
	if err != nil {
		return "", fmt.Errorf("resolve host key path: %w", err)
	}
	return path, nil
}

// StartSSHServer serves one desktop per SSH session until ctx is done.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig, rt *Runtime) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		p, err := HostKeyPath()
		if err != nil {
			return err
		}
		hostKeyPath = p
	}

	app.SetInputHandler(input.HandleInput)

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler(rt)),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("starting SSH server", "addr", srv.Addr, "key", hostKeyPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errC <- err
		}
		close(errC)
	}()

	select {
	case err := <-errC:
		if err != nil {
			return fmt.Errorf("SSH server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down SSH server")
	return srv.Shutdown(context.Background())
}

// teaHandler creates a desktop for each SSH session.
func teaHandler(rt *Runtime) bubbletea.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, active := s.Pty()
		if !active {
			logger.Warn("session without a pty", "user", s.User(), "remote", s.RemoteAddr())
			return nil, nil
		}

		id := uuid.NewString()
		path := requestedPath(s.Command())
		logger.Info("session started", "user", s.User(), "remote", s.RemoteAddr(), "session", id, "path", path)

		d := rt.NewDesk(s.Context(), pty.Window.Width, pty.Window.Height, id, path)
		return d, []tea.ProgramOption{
			tea.WithFPS(config.NormalFPS),
		}
	}
}

// requestedPath picks the start page from the SSH command, so that
// `ssh -t host /music` opens the music page. Anything else opens the
// default page.
func requestedPath(cmd []string) string {
	if len(cmd) == 0 {
		return ""
	}
	p := strings.TrimSpace(cmd[0])
	if !strings.HasPrefix(p, "/") {
		return ""
	}
	return desktop.Clean(p)
}
