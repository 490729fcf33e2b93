package games

import (
	"github.com/preston-bernstein/game-catalog-service/internal/domain"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/developers"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/genres"
)

// Rating is the content rating label configured in the store.
type Rating string

const (
	RatingEveryone   Rating = "Everyone"
	RatingEveryone10 Rating = "Everyone 10+"
	RatingTeen       Rating = "Teen"
	RatingMature     Rating = "Mature 17+"
)

// Ratings lists every rating label in display order.
var Ratings = []Rating{RatingEveryone, RatingEveryone10, RatingTeen, RatingMature}

// Valid reports whether r is a known rating label.
func (r Rating) Valid() bool {
	for _, known := range Ratings {
		if r == known {
			return true
		}
	}
	return false
}

// Platform is a platform label a game ships on.
type Platform string

const (
	PlatformPC          Platform = "PC"
	PlatformPlayStation Platform = "PlayStation"
	PlatformXbox        Platform = "Xbox"
	PlatformSwitch      Platform = "Nintendo Switch"
	PlatformMobile      Platform = "Mobile"
)

// Platforms lists every platform label in display order.
var Platforms = []Platform{PlatformPC, PlatformPlayStation, PlatformXbox, PlatformSwitch, PlatformMobile}

// Valid reports whether p is a known platform label.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// RatingField is the select-dropdown shape the store uses for ratings.
type RatingField struct {
	Key   string `json:"key"`
	Value Rating `json:"value"`
}

// Metadata is the game-specific payload.
type Metadata struct {
	GameTitle     string                           `json:"game_title"`
	Description   string                           `json:"description"`
	FeaturedImage *domain.Image                    `json:"featured_image,omitempty"`
	Screenshots   []domain.Image                   `json:"screenshots,omitempty"`
	Genre         domain.Ref[genres.Genre]         `json:"genre"`
	Developer     domain.Ref[developers.Developer] `json:"developer"`
	ReleaseDate   string                           `json:"release_date,omitempty"`
	Rating        *RatingField                     `json:"rating,omitempty"`
	Platform      []string                         `json:"platform,omitempty"`
	FeaturedGame  bool                             `json:"featured_game"`
}

// Game is a catalog entry.
type Game struct {
	domain.Object
	Metadata Metadata `json:"metadata"`
}

// Featured reports whether the game is flagged for the featured rail.
func (g Game) Featured() bool {
	return g.Metadata.FeaturedGame
}

// Genre returns the embedded genre when the store resolved it.
func (g Game) Genre() *genres.Genre {
	return g.Metadata.Genre.Object
}

// Developer returns the embedded developer when the store resolved it.
func (g Game) Developer() *developers.Developer {
	return g.Metadata.Developer.Object
}
