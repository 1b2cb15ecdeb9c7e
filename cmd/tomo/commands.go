package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/desktop"
	"github.com/etbcor/tomo/internal/theme"
)

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// findEditor returns $EDITOR, $VISUAL or the first common editor on PATH.
func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := os.Getenv(env); e != "" {
			return e, nil
		}
	}
	for _, e := range []string{"vim", "vi", "nano", "emacs"} {
		if _, err := exec.LookPath(e); err == nil {
			return e, nil
		}
	}
	return "", config.ErrNoEditor
}

func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if err := config.WriteDefaultConfig(configPath); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor, err := findEditor()
	if err != nil {
		return err
	}

	// $EDITOR may carry arguments, e.g. "code --wait".
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], configPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func resetConfigToDefaults() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.WriteDefaultConfig(configPath); err != nil {
		return err
	}
	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: tomo config edit")
	return nil
}

func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableHeader()).Padding(0, 1)
	keyStyle := lipgloss.NewStyle().Foreground(theme.CLITableKey()).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableBorder())).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return keyStyle
			}
			return cellStyle
		})
}

func sectionTitle(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableHeader()).Render(s)
}

func dim(s string) string {
	return lipgloss.NewStyle().Foreground(theme.CLITableDim()).Italic(true).Render(s)
}

func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default keybindings...")
		userConfig = config.DefaultConfig()
	}
	registry := config.NewKeybindRegistry(userConfig)

	fmt.Println()
	fmt.Println(sectionTitle("tomo keybindings"))
	fmt.Println()
	for _, section := range config.GetKeybindings(registry) {
		if len(section.Bindings) == 0 {
			continue
		}
		t := newTable("Keys", "Action")
		for _, b := range section.Bindings {
			t.Row(b.Key, b.Description)
		}
		fmt.Println(sectionTitle(section.Title))
		fmt.Println(t.Render())
		fmt.Println()
	}
	fmt.Println(dim("Ctrl+C always quits."))
	fmt.Println()
	return nil
}

// Customization is a keybinding that differs from the defaults.
type Customization struct {
	Action      string
	DefaultKeys string
	CustomKeys  string
}

// findCustomizations lists the actions whose keys differ from the defaults,
// sorted by action name.
func findCustomizations(userCfg, defaultCfg *config.UserConfig) []Customization {
	var out []Customization
	compare := func(user, def map[string][]string) {
		for action, defaultKeys := range def {
			userKeys, ok := user[action]
			if !ok || slices.Equal(userKeys, defaultKeys) {
				continue
			}
			out = append(out, Customization{
				Action:      formatActionName(action),
				DefaultKeys: strings.Join(defaultKeys, ", "),
				CustomKeys:  strings.Join(userKeys, ", "),
			})
		}
	}
	compare(userCfg.Keybindings.Desktop, defaultCfg.Keybindings.Desktop)
	compare(userCfg.Keybindings.Window, defaultCfg.Keybindings.Window)
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out
}

func formatActionName(action string) string {
	if desc, ok := config.ActionDescriptions[action]; ok {
		return desc
	}
	return strings.ReplaceAll(action, "_", " ")
}

func listCustomKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	customizations := findCustomizations(userConfig, config.DefaultConfig())
	if len(customizations) == 0 {
		fmt.Println(dim("No custom keybindings configured. All keybindings are using defaults."))
		fmt.Println()
		fmt.Println("Run 'tomo keybinds list' to see all keybindings.")
		return nil
	}

	t := newTable("Action", "Default", "Custom")
	for _, c := range customizations {
		t.Row(c.Action, c.DefaultKeys, c.CustomKeys)
	}
	fmt.Println()
	fmt.Println(sectionTitle("Custom keybindings"))
	fmt.Println(t.Render())
	fmt.Printf("\nFound %d customized keybinding(s)\n\n", len(customizations))
	return nil
}

func printPages() {
	t := newTable("Path", "Page")
	for _, r := range desktop.Routes() {
		t.Row(r.Path, r.Title)
	}
	fmt.Println(t.Render())
	fmt.Println(dim("Any other path opens the not found page."))
}
