package domain

// Kind names an object type in the content store.
type Kind string

const (
	KindGames      Kind = "games"
	KindGenres     Kind = "genres"
	KindDevelopers Kind = "developers"
)

// Object carries the identity fields every content-store record shares.
type Object struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Type       Kind   `json:"type,omitempty"`
	Content    string `json:"content,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

// Image is a media reference served by the content store.
type Image struct {
	URL      string `json:"url"`
	ImgixURL string `json:"imgix_url"`
}

// IsGame reports whether the object is a games record.
func IsGame(o Object) bool { return o.Type == KindGames }

// IsGenre reports whether the object is a genres record.
func IsGenre(o Object) bool { return o.Type == KindGenres }

// IsDeveloper reports whether the object is a developers record.
func IsDeveloper(o Object) bool { return o.Type == KindDevelopers }
