package genres

import "github.com/preston-bernstein/game-catalog-service/internal/domain"

// Metadata is the genre-specific payload.
type Metadata struct {
	GenreName   string `json:"genre_name"`
	Description string `json:"description,omitempty"`
	GenreColor  string `json:"genre_color,omitempty"`
}

// Genre is a games category such as Action or RPG.
type Genre struct {
	domain.Object
	Metadata Metadata `json:"metadata"`
}

// Name returns the display name, falling back to the object title.
func (g Genre) Name() string {
	if g.Metadata.GenreName != "" {
		return g.Metadata.GenreName
	}
	return g.Title
}
