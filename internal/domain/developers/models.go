package developers

import "github.com/preston-bernstein/game-catalog-service/internal/domain"

// Metadata is the developer-specific payload.
type Metadata struct {
	StudioName string        `json:"studio_name"`
	About      string        `json:"about,omitempty"`
	Founded    string        `json:"founded,omitempty"`
	Website    string        `json:"website,omitempty"`
	Logo       *domain.Image `json:"logo,omitempty"`
}

// Developer is a game studio.
type Developer struct {
	domain.Object
	Metadata Metadata `json:"metadata"`
}

// Name returns the studio name, falling back to the object title.
func (d Developer) Name() string {
	if d.Metadata.StudioName != "" {
		return d.Metadata.StudioName
	}
	return d.Title
}
