// Package output provides the console output layer for rsparam: a
// printer with semantic styling, lipgloss table rendering for record
// collections, and YAML-defined themes. It consumes the core's ordered
// records and renders them; no analytical logic lives here.
package output

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"rsparam/internal/logger"
)

//go:embed themes/default.yaml
var defaultThemeData []byte

//go:embed themes/plain.yaml
var plainThemeData []byte

// Theme defines the styles used for semantic output rendering.
type Theme struct {
	Name    string
	Title   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
}

// themeFile mirrors the YAML layout of an embedded theme definition.
type themeFile struct {
	Theme struct {
		Name   string `yaml:"name"`
		Styles struct {
			Title   styleConfig `yaml:"title"`
			Info    styleConfig `yaml:"info"`
			Success styleConfig `yaml:"success"`
			Warning styleConfig `yaml:"warning"`
			Error   styleConfig `yaml:"error"`
			Header  styleConfig `yaml:"header"`
		} `yaml:"styles"`
	} `yaml:"theme"`
}

// styleConfig is one style entry in a theme file.
type styleConfig struct {
	Foreground *string `yaml:"foreground"`
	Background *string `yaml:"background"`
	Bold       *bool   `yaml:"bold"`
	Underline  *bool   `yaml:"underline"`
}

// Themes loads the embedded themes, keyed by name. A theme that fails
// to parse is replaced with the fallback plain theme so output always
// works.
func Themes() map[string]*Theme {
	themes := make(map[string]*Theme)
	for name, data := range map[string][]byte{
		"default": defaultThemeData,
		"plain":   plainThemeData,
	} {
		theme, err := loadTheme(data)
		if err != nil {
			logger.Error("failed to load theme", "theme", name, "error", err)
			themes[name] = fallbackTheme(name)
			continue
		}
		themes[name] = theme
	}
	return themes
}

// LoadTheme returns the named embedded theme, or an error listing a
// bad name before any rendering happens.
func LoadTheme(name string) (*Theme, error) {
	themes := Themes()
	theme, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: default, plain)", name)
	}
	return theme, nil
}

// loadTheme parses one embedded theme YAML document.
func loadTheme(data []byte) (*Theme, error) {
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	styles := tf.Theme.Styles
	return &Theme{
		Name:    tf.Theme.Name,
		Title:   createStyle(styles.Title),
		Info:    createStyle(styles.Info),
		Success: createStyle(styles.Success),
		Warning: createStyle(styles.Warning),
		Error:   createStyle(styles.Error),
		Header:  createStyle(styles.Header),
	}, nil
}

// createStyle converts a styleConfig to a lipgloss.Style.
func createStyle(config styleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()
	if config.Foreground != nil {
		style = style.Foreground(lipgloss.Color(*config.Foreground))
	}
	if config.Background != nil {
		style = style.Background(lipgloss.Color(*config.Background))
	}
	if config.Bold != nil && *config.Bold {
		style = style.Bold(true)
	}
	if config.Underline != nil && *config.Underline {
		style = style.Underline(true)
	}
	return style
}

// fallbackTheme is an unstyled theme used when a definition cannot be
// loaded.
func fallbackTheme(name string) *Theme {
	return &Theme{
		Name:    name,
		Title:   lipgloss.NewStyle(),
		Info:    lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Header:  lipgloss.NewStyle(),
	}
}
