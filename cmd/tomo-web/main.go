// Package main implements tomo-web, which serves tomo desktops to the
// browser through sip.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/sip"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/etbcor/tomo/internal/app"
	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/input"
	"github.com/etbcor/tomo/internal/logging"
	"github.com/etbcor/tomo/internal/server"
	"github.com/etbcor/tomo/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Command-line flags
var (
	webPort           string
	webHost           string
	webReadOnly       bool
	webMaxConnections int
	debugMode         bool
	asciiOnly         bool
	themeName         string
	borderStyle       string
	startPath         string
)

var logger = logging.For("web")

func main() {
	rootCmd := &cobra.Command{
		Use:   "tomo-web",
		Short: "Serve tomo in the browser",
		Long: `tomo-web - tomo in the browser

Serves a tomo desktop to every browser tab that connects, powered by sip
(github.com/Gaurav-Gosain/sip).`,
		Example: `  # Start web server on default port (7681)
  tomo-web

  # Bind to all interfaces, open on the music page
  tomo-web --host 0.0.0.0 --path /music

  # Limit concurrent connections
  tomo-web --max-connections 10`,
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWebServer(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&webPort, "port", "7681", "Web server port")
	rootCmd.Flags().StringVar(&webHost, "host", "localhost", "Web server host")
	rootCmd.Flags().BoolVar(&webReadOnly, "read-only", false, "Disable input from clients (view only)")
	rootCmd.Flags().IntVar(&webMaxConnections, "max-connections", 0, "Maximum concurrent connections (0 = unlimited)")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&asciiOnly, "ascii-only", false, "Draw with ASCII characters only")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight)")
	rootCmd.Flags().StringVar(&borderStyle, "border-style", "", "Window border style")
	rootCmd.Flags().StringVar(&startPath, "path", "", "Page new desktops open on")

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

func runWebServer(ctx context.Context) error {
	// Stdout is not the client's terminal; render in true color regardless.
	lipgloss.Writer.Profile = colorprofile.TrueColor

	if debugMode {
		logging.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	applyFlags(cfg)

	rt, err := server.NewRuntime(cfg, startPath)
	if err != nil {
		return err
	}
	app.SetInputHandler(input.HandleInput)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	rt.Start(ctx)

	sipConfig := sip.DefaultConfig()
	sipConfig.Host = webHost
	sipConfig.Port = webPort
	sipConfig.ReadOnly = webReadOnly
	sipConfig.MaxConnections = webMaxConnections
	sipConfig.Debug = debugMode

	logger.Info("serving tomo", "host", webHost, "port", webPort)
	return sip.NewServer(sipConfig).Serve(ctx, deskHandler(ctx, rt))
}

// deskHandler creates a desktop for each browser session.
func deskHandler(ctx context.Context, rt *server.Runtime) func(sip.Session) (tea.Model, []tea.ProgramOption) {
	return func(sess sip.Session) (tea.Model, []tea.ProgramOption) {
		pty := sess.Pty()
		id := uuid.NewString()
		logger.Info("session started", "session", id, "cols", pty.Width, "rows", pty.Height)

		d := rt.NewDesk(ctx, pty.Width, pty.Height, id, "")
		return d, []tea.ProgramOption{
			tea.WithFPS(config.NormalFPS),
			tea.WithColorProfile(colorprofile.TrueColor),
		}
	}
}

func applyFlags(cfg *config.UserConfig) {
	if asciiOnly {
		cfg.Appearance.ASCIIOnly = true
	}
	if borderStyle != "" && config.IsValidBorderStyle(borderStyle) {
		cfg.Appearance.BorderStyle = borderStyle
	}
	if themeName != "" {
		cfg.Appearance.Theme = themeName
	}
	config.Apply(cfg)
	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		logger.Warn("theme", "err", err)
	}
}
