package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tranquocbao1210/verse-deck/pkg/pptx"
)

type Config struct {
	Style   StyleConfig   `yaml:"style"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

type StyleConfig struct {
	TitleColor      string `yaml:"title_color"`
	VerseColor      string `yaml:"verse_color"`
	TitleFont       string `yaml:"title_font"`
	VerseFont       string `yaml:"verse_font"`
	TitleFontSize   int    `yaml:"title_font_size"`
	VerseFontSize   int    `yaml:"verse_font_size"`
	BackgroundImage string `yaml:"background_image"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type OutputConfig struct {
	Filename string `yaml:"filename"`
}

const (
	minFontSize = 10
	maxFontSize = 200
)

// allowedFonts is the fixed set of font families slides can use.
var allowedFonts = []string{
	"Arial",
	"Calibri",
	"Comic Sans MS",
	"Georgia",
	"Helvetica",
	"Impact",
	"Tahoma",
	"Times New Roman",
	"Trebuchet MS",
	"Verdana",
}

// Load reads a YAML config file and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate applies defaults, then rejects out-of-range sizes, unknown font
// families and malformed colors.
func (c *Config) Validate() error {
	if c.Style.TitleColor == "" {
		c.Style.TitleColor = "FFFF00"
	}
	if c.Style.VerseColor == "" {
		c.Style.VerseColor = "FFFFFF"
	}
	if c.Style.TitleFont == "" {
		c.Style.TitleFont = "Arial"
	}
	if c.Style.VerseFont == "" {
		c.Style.VerseFont = "Arial"
	}
	if c.Style.TitleFontSize == 0 {
		c.Style.TitleFontSize = 72
	}
	if c.Style.VerseFontSize == 0 {
		c.Style.VerseFontSize = 65
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Output.Filename == "" {
		c.Output.Filename = pptx.DefaultFileName
	}

	if _, err := ParseColor(c.Style.TitleColor); err != nil {
		return fmt.Errorf("style.title_color: %w", err)
	}
	if _, err := ParseColor(c.Style.VerseColor); err != nil {
		return fmt.Errorf("style.verse_color: %w", err)
	}
	if c.Style.TitleFontSize < minFontSize || c.Style.TitleFontSize > maxFontSize {
		return fmt.Errorf("style.title_font_size must be in %d..%d, got %d", minFontSize, maxFontSize, c.Style.TitleFontSize)
	}
	if c.Style.VerseFontSize < minFontSize || c.Style.VerseFontSize > maxFontSize {
		return fmt.Errorf("style.verse_font_size must be in %d..%d, got %d", minFontSize, maxFontSize, c.Style.VerseFontSize)
	}
	if !fontAllowed(c.Style.TitleFont) {
		return fmt.Errorf("style.title_font %q is not an allowed font family", c.Style.TitleFont)
	}
	if !fontAllowed(c.Style.VerseFont) {
		return fmt.Errorf("style.verse_font %q is not an allowed font family", c.Style.VerseFont)
	}

	return nil
}

func fontAllowed(name string) bool {
	for _, f := range allowedFonts {
		if f == name {
			return true
		}
	}
	return false
}

// ParseColor parses an RRGGBB hex string, with an optional leading '#'.
func ParseColor(s string) (pptx.RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return pptx.RGB{}, fmt.Errorf("color %q is not an RRGGBB hex value", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return pptx.RGB{}, fmt.Errorf("color %q is not an RRGGBB hex value", s)
	}
	return pptx.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
