package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

type ColorConfig struct {
	Primary   int `json:"primary"`
	Highlight int `json:"highlight"`
	Error     int `json:"error"`
	Text      int `json:"text"`
	Accent    int `json:"accent"`
}

type Config struct {
	NotesPath string      `json:"notes_path"`
	LogPath   string      `json:"log_path"`
	Colors    ColorConfig `json:"colors"`
}

var (
	config         Config
	primaryStyle   lipgloss.Style
	highlightStyle lipgloss.Style
	errorStyle     lipgloss.Style
	textStyle      lipgloss.Style
	accentStyle    lipgloss.Style
	cursorStyle    = lipgloss.NewStyle().Reverse(true)
)

func getConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "totepad")
}

func getConfigPath() string {
	return filepath.Join(getConfigDir(), "config.json")
}

func getDefaultConfig() Config {
	homeDir, _ := os.UserHomeDir()
	return Config{
		NotesPath: filepath.Join(homeDir, "Documents", "Notes"),
		LogPath:   filepath.Join(getConfigDir(), "totepad.log"),
		Colors: ColorConfig{
			Primary:   11, // Bright Yellow
			Highlight: 10, // Bright Green
			Error:     9,  // Bright Red
			Text:      15, // Bright White
			Accent:    14, // Bright Cyan
		},
	}
}

// loadConfig reads the config at path. A missing file is replaced with the
// defaults; a broken one is ignored in favor of them. Either problem is
// returned with the config so it can be logged once logging is set up.
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		cfg := getDefaultConfig()
		if err := saveConfig(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	cfg := getDefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return getDefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func saveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func color(c int) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("%d", c))
}

func applyColorConfig() {
	primaryStyle = lipgloss.NewStyle().Foreground(color(config.Colors.Primary))
	highlightStyle = lipgloss.NewStyle().Foreground(color(config.Colors.Highlight))
	errorStyle = lipgloss.NewStyle().Foreground(color(config.Colors.Error))
	textStyle = lipgloss.NewStyle().Foreground(color(config.Colors.Text))
	accentStyle = lipgloss.NewStyle().Foreground(color(config.Colors.Accent))
}
