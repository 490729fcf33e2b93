package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/preston-bernstein/game-catalog-service/internal/domain"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/developers"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/genres"
	"github.com/preston-bernstein/game-catalog-service/internal/providers"
)

type decodeFunc[T any] func(providers.Object) (T, error)

func identity(obj providers.Object, kind domain.Kind) domain.Object {
	t := kind
	if obj.Type != "" {
		t = domain.Kind(obj.Type)
	}
	return domain.Object{
		ID:         obj.ID,
		Slug:       obj.Slug,
		Title:      obj.Title,
		Type:       t,
		Content:    obj.Content,
		CreatedAt:  obj.CreatedAt,
		ModifiedAt: obj.ModifiedAt,
	}
}

func decodeGame(obj providers.Object) (games.Game, error) {
	g := games.Game{Object: identity(obj, domain.KindGames)}
	if err := json.Unmarshal(obj.Metadata, &g.Metadata); err != nil {
		return games.Game{}, fmt.Errorf("decode game %q: %w", obj.ID, err)
	}
	return g, nil
}

func decodeGenre(obj providers.Object) (genres.Genre, error) {
	g := genres.Genre{Object: identity(obj, domain.KindGenres)}
	if err := json.Unmarshal(obj.Metadata, &g.Metadata); err != nil {
		return genres.Genre{}, fmt.Errorf("decode genre %q: %w", obj.ID, err)
	}
	return g, nil
}

func decodeDeveloper(obj providers.Object) (developers.Developer, error) {
	d := developers.Developer{Object: identity(obj, domain.KindDevelopers)}
	if err := json.Unmarshal(obj.Metadata, &d.Metadata); err != nil {
		return developers.Developer{}, fmt.Errorf("decode developer %q: %w", obj.ID, err)
	}
	return d, nil
}
