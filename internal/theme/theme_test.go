package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	p := Default()

	assert.Equal(t, "#6366f1", p.Colors.Primary.Default)
	assert.Equal(t, "#5b21b6", p.Colors.Primary.Shades["600"])
	assert.Equal(t, "#ff4444", p.Colors.Genres["action"])
	assert.Equal(t, "#0f0f23", p.Colors.Gaming.Dark)
	assert.Equal(t, "#8b5cf6", p.Colors.Gaming.Accent)
	require.NotEmpty(t, p.Fonts["sans"])
	assert.Equal(t, "Inter", p.Fonts["sans"][0])
	assert.Equal(t, "fadeIn 0.5s ease-in", p.Animations["fade-in"])
	assert.Same(t, p, Default())
}

func TestGenreAccent(t *testing.T) {
	p := Default()

	tests := []struct {
		name     string
		slug     string
		explicit string
		want     string
	}{
		{name: "explicit wins", slug: "action", explicit: "#123456", want: "#123456"},
		{name: "palette by slug", slug: "rpg", want: "#4444ff"},
		{name: "slug case-insensitive", slug: "Strategy", want: "#44ff44"},
		{name: "fallback accent", slug: "puzzle", want: "#8b5cf6"},
		{name: "blank explicit ignored", slug: "action", explicit: "  ", want: "#ff4444"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.GenreAccent(tt.slug, tt.explicit))
		})
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse([]byte("colors: [unterminated"))
	assert.Error(t, err)

	_, err = Parse([]byte("colors:\n  gaming:\n    dark: \"#000\"\n"))
	assert.Error(t, err)
}
