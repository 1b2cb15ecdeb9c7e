// Package main implements tomo, a desktop of draggable windows drawn in the
// terminal. It runs locally or serves desktops over SSH.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode   bool
	asciiOnly   bool
	noStatus    bool
	themeName   string
	borderStyle string
	startPath   string
	contentDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tomo",
		Short: "A desktop of windows in your terminal",
		Long: `tomo - a desktop in your terminal

Windows can be dragged by their title bar, raised by clicking, expanded,
minimized to the footer and closed. Links move between pages, and the Meta
window on the home page holds the home page again, all the way down.`,
		Example: `  # Run tomo
  tomo

  # Open a page directly
  tomo --path /tp/nasin_nanpa

  # Serve tomo over SSH
  tomo ssh --port 2222

  # Edit configuration
  tomo config edit

  # List all keybindings
  tomo keybinds list`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Draw with ASCII characters only")
	rootCmd.PersistentFlags().BoolVar(&noStatus, "no-status", false, "Hide the CPU and RAM readout in the footer")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight)")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden, block, ascii, outer-half-block, inner-half-block")
	rootCmd.PersistentFlags().StringVar(&startPath, "path", "", "Page to open first (e.g., /music)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content-dir", "", "Directory of markdown and links.yaml files overriding the built-in content")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve tomo over SSH",
		Long: `Serve tomo over SSH

Every connection gets its own desktop. A host key is generated on first
start if none is given. Clients may name a start page as the command:

  ssh -t -p 2222 host /music`,
		Example: `  # Start SSH server on default port
  tomo ssh

  # Start on custom port, all interfaces
  tomo ssh --host 0.0.0.0 --port 2222

  # Specify custom host key
  tomo ssh --key-path /path/to/host_key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(cmd.Context(), sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tomo configuration",
		Long:  `Manage the tomo configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the tomo configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the tomo configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	keybindsCustomCmd := &cobra.Command{
		Use:   "list-custom",
		Short: "List customized keybindings",
		Long:  `Display only keybindings that differ from defaults`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCustomKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd, keybindsCustomCmd)

	pagesCmd := &cobra.Command{
		Use:   "pages",
		Short: "List the pages tomo can show",
		RunE: func(cmd *cobra.Command, args []string) error {
			printPages()
			return nil
		},
	}

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd, pagesCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
