package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/etbcor/tomo/internal/app"
	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/desktop"
	"github.com/etbcor/tomo/internal/input"
	"github.com/etbcor/tomo/internal/logging"
	"github.com/etbcor/tomo/internal/server"
	"github.com/etbcor/tomo/internal/theme"
)

var logger = logging.For("tomo")

// errNoTTY is returned when the local desktop is started without a terminal.
var errNoTTY = errors.New("tomo needs an interactive terminal (use `tomo ssh` to serve it instead)")

// filterMouseMotion drops pointer motion unless a window is being dragged.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	d, ok := model.(*app.Desk)
	if !ok || d.Drag.Active() {
		return msg
	}
	return nil
}

// loadConfig reads the config file and applies the command-line overrides.
func loadConfig() *config.UserConfig {
	if debugMode {
		logging.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	if asciiOnly {
		cfg.Appearance.ASCIIOnly = true
	}
	if noStatus {
		cfg.Appearance.ShowStatus = false
	}
	if borderStyle != "" {
		if config.IsValidBorderStyle(borderStyle) {
			cfg.Appearance.BorderStyle = borderStyle
		} else {
			logger.Warn("unknown border style, keeping configured one", "style", borderStyle)
		}
	}
	if themeName != "" {
		cfg.Appearance.Theme = themeName
	}
	if contentDir != "" {
		cfg.Content.Dir = contentDir
	}
	config.Apply(cfg)

	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		logger.Warn("theme", "err", err)
	}
	if startPath != "" && !desktop.Known(desktop.Clean(startPath)) {
		logger.Warn("unknown page, it will show as not found", "path", startPath)
	}
	return cfg
}

func runLocal(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTTY
	}

	cfg := loadConfig()
	rt, err := server.NewRuntime(cfg, startPath)
	if err != nil {
		return err
	}

	// The desktop owns the terminal, so logs go to a file.
	if logPath, err := config.GetLogPath(); err == nil {
		closeLog, err := logging.OpenFile(logPath)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = closeLog() }()
	}

	app.SetInputHandler(input.HandleInput)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	rt.Start(ctx)

	desk := rt.NewDesk(ctx, 0, 0, "", "")
	p := tea.NewProgram(
		desk,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			p.Send(tea.QuitMsg{})
		case <-ctx.Done():
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	logger.Info("bye", "session", desk.SessionID)
	return nil
}

func runSSHServer(ctx context.Context, sshHost, sshPort, sshKeyPath string) error {
	cfg := loadConfig()
	rt, err := server.NewRuntime(cfg, startPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	rt.Start(ctx)

	if err := server.StartSSHServer(ctx, &server.SSHServerConfig{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
	}, rt); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}
