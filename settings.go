package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gochrome/chrome"
)

// Settings is the YAML configuration file. Keys left out keep their
// defaults.
type Settings struct {
	Backend string `yaml:"backend"`
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Debug   bool   `yaml:"debug"`

	// Icon is an image path, or several comma-separated paths of the same
	// icon at different sizes.
	Icon string `yaml:"icon"`

	Theme  string         `yaml:"theme"`
	Colors ColorSettings  `yaml:"colors"`
	Layout LayoutSettings `yaml:"layout"`
}

// ColorSettings override single theme colors. Empty keeps the theme's.
type ColorSettings struct {
	WindowBack   string `yaml:"windowBack"`
	ContentBack  string `yaml:"contentBack"`
	ControlHover string `yaml:"controlHover"`
	Glyph        string `yaml:"glyph"`
}

type LayoutSettings struct {
	CaptionBarHeight int           `yaml:"captionBarHeight"`
	BorderWidth      int           `yaml:"borderWidth"`
	ControlWidth     int           `yaml:"controlWidth"`
	ControlHeight    int           `yaml:"controlHeight"`
	IconMarginX      int           `yaml:"iconMarginX"`
	IconMarginY      int           `yaml:"iconMarginY"`
	ContentPadding   chrome.Insets `yaml:"contentPadding"`
}

const (
	themeAuto  = "auto"
	themeLight = "light"
	themeDark  = "dark"
)

func defaultSettings() Settings {
	p := chrome.DefaultParams()
	return Settings{
		Backend: backendEbiten,
		Title:   "gochrome",
		Width:   640,
		Height:  400,
		Theme:   themeAuto,
		Layout: LayoutSettings{
			CaptionBarHeight: p.CaptionBarHeight,
			BorderWidth:      p.BorderWidth,
			ControlWidth:     p.ControlWidth,
			ControlHeight:    p.ControlHeight,
			IconMarginX:      p.IconMarginX,
			IconMarginY:      p.IconMarginY,
			ContentPadding:   p.ContentPadding,
		},
	}
}

// loadSettings reads path over the defaults. A missing file is not an error.
func loadSettings(path string) (Settings, error) {
	s := defaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// saveSettings writes s as YAML.
func saveSettings(path string, s Settings) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func (s Settings) validate() error {
	switch s.Theme {
	case themeAuto, themeLight, themeDark:
	default:
		return fmt.Errorf("unknown theme %q", s.Theme)
	}
	if _, ok := backends[s.Backend]; !ok {
		return fmt.Errorf("unsupported backend %q", s.Backend)
	}
	_, err := s.Colors.apply(chrome.Theme{})
	return err
}

// Params returns the layout parameters.
func (s Settings) Params() chrome.Params {
	l := s.Layout
	return chrome.Params{
		CaptionBarHeight: l.CaptionBarHeight,
		BorderWidth:      l.BorderWidth,
		ControlWidth:     l.ControlWidth,
		ControlHeight:    l.ControlHeight,
		IconMarginX:      l.IconMarginX,
		IconMarginY:      l.IconMarginY,
		ContentPadding:   l.ContentPadding,
	}
}

// IconPaths splits the icon setting into its paths.
func (s Settings) IconPaths() []string {
	var paths []string
	for _, p := range strings.Split(s.Icon, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// Options converts the settings into frame options. The theme is resolved
// here, so "auto" queries the desktop.
func (s Settings) Options() ([]chrome.Option, error) {
	th, err := resolveTheme(s.Theme)
	if err != nil {
		return nil, err
	}
	th, err = s.Colors.apply(th)
	if err != nil {
		return nil, err
	}
	return []chrome.Option{
		chrome.WithParams(s.Params()),
		chrome.WithTheme(th),
	}, nil
}

func (c ColorSettings) apply(th chrome.Theme) (chrome.Theme, error) {
	fields := []struct {
		name string
		val  string
		dst  *chrome.Color
	}{
		{"windowBack", c.WindowBack, &th.WindowBackColor},
		{"contentBack", c.ContentBack, &th.ContentBackColor},
		{"controlHover", c.ControlHover, &th.ControlHoverColor},
		{"glyph", c.Glyph, &th.GlyphColor},
	}
	for _, f := range fields {
		if f.val == "" {
			continue
		}
		col, err := chrome.ParseColor(f.val)
		if err != nil {
			return th, fmt.Errorf("color %s: %w", f.name, err)
		}
		*f.dst = col
	}
	return th, nil
}
