package theme

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed palette.yaml
var paletteYAML []byte

// Primary is the brand color with its numbered shades.
type Primary struct {
	Default string            `yaml:"default" json:"default"`
	Shades  map[string]string `yaml:"shades" json:"shades"`
}

// Gaming holds the dark surface colors and the accent.
type Gaming struct {
	Dark   string `yaml:"dark" json:"dark"`
	Darker string `yaml:"darker" json:"darker"`
	Accent string `yaml:"accent" json:"accent"`
}

// Colors groups every named color in the palette.
type Colors struct {
	Primary Primary           `yaml:"primary" json:"primary"`
	Genres  map[string]string `yaml:"genres" json:"genres"`
	Gaming  Gaming            `yaml:"gaming" json:"gaming"`
}

// Palette is the styling data shared with front ends.
type Palette struct {
	Colors     Colors              `yaml:"colors" json:"colors"`
	Fonts      map[string][]string `yaml:"fonts" json:"fonts"`
	Animations map[string]string   `yaml:"animations" json:"animations"`
}

var (
	defaultPalette *Palette
	defaultOnce    sync.Once
)

// Default returns the embedded palette. It is parsed once and must be
// treated as read-only.
func Default() *Palette {
	defaultOnce.Do(func() {
		p, err := Parse(paletteYAML)
		if err != nil {
			panic(fmt.Sprintf("theme: embedded palette: %v", err))
		}
		defaultPalette = p
	})
	return defaultPalette
}

// Parse decodes a palette document.
func Parse(data []byte) (*Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}
	if p.Colors.Gaming.Accent == "" {
		return nil, fmt.Errorf("parse palette: gaming accent is required")
	}
	return &p, nil
}

// GenreAccent picks the color used to badge a genre: the genre's own color
// when set, then the palette color for its slug, then the gaming accent.
func (p *Palette) GenreAccent(slug, explicit string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	if c, ok := p.Colors.Genres[strings.ToLower(slug)]; ok && c != "" {
		return c
	}
	return p.Colors.Gaming.Accent
}
