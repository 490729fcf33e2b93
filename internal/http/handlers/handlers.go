package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/game-catalog-service/internal/domain/developers"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/genres"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
	"github.com/preston-bernstein/game-catalog-service/internal/theme"
)

// Catalog is the read surface the handlers depend on.
type Catalog interface {
	Games(ctx context.Context) ([]games.Game, error)
	GameBySlug(ctx context.Context, slug string) (*games.Game, error)
	FeaturedGames(ctx context.Context) ([]games.Game, error)
	GamesByGenre(ctx context.Context, genreID string) ([]games.Game, error)
	GamesByDeveloper(ctx context.Context, developerID string) ([]games.Game, error)
	GamesByPlatform(ctx context.Context, platform games.Platform) ([]games.Game, error)
	GamesByRating(ctx context.Context, rating games.Rating) ([]games.Game, error)
	Genres(ctx context.Context) ([]genres.Genre, error)
	GenreBySlug(ctx context.Context, slug string) (*genres.Genre, error)
	Developers(ctx context.Context) ([]developers.Developer, error)
	DeveloperBySlug(ctx context.Context, slug string) (*developers.Developer, error)
}

// Handler wires HTTP routes to the catalog façade.
type Handler struct {
	svc     Catalog
	palette *theme.Palette
	logger  *slog.Logger
}

// NewHandler constructs a Handler. A nil palette selects the embedded default.
func NewHandler(svc Catalog, palette *theme.Palette, logger *slog.Logger) *Handler {
	if palette == nil {
		palette = theme.Default()
	}
	return &Handler{
		svc:     svc,
		palette: palette,
		logger:  logger,
	}
}

type gamesResponse struct {
	Games []games.Game `json:"games"`
	Count int          `json:"count"`
}

// GenreView is a genre with the color front ends should badge it with.
type GenreView struct {
	genres.Genre
	AccentColor string `json:"accentColor"`
}

type genresResponse struct {
	Genres []GenreView `json:"genres"`
	Count  int         `json:"count"`
}

type developersResponse struct {
	Developers []developers.Developer `json:"developers"`
	Count      int                    `json:"count"`
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Theme returns the styling palette.
func (h *Handler) Theme(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.palette, h.logger)
}

// Games lists games. At most one filter may be given: featured, genre,
// developer, platform or rating.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	query := r.URL.Query()
	filters := 0
	for _, key := range []string{"featured", "genre", "developer", "platform", "rating"} {
		if query.Has(key) {
			filters++
		}
	}
	if filters > 1 {
		writeError(w, r, nethttp.StatusBadRequest, "only one filter may be used at a time", h.logger)
		return
	}

	ctx := r.Context()
	var (
		list []games.Game
		err  error
	)
	switch {
	case query.Has("featured"):
		if !strings.EqualFold(query.Get("featured"), "true") {
			writeError(w, r, nethttp.StatusBadRequest, "featured must be true", h.logger)
			return
		}
		list, err = h.svc.FeaturedGames(ctx)
	case query.Has("genre"):
		id := strings.TrimSpace(query.Get("genre"))
		if id == "" {
			writeError(w, r, nethttp.StatusBadRequest, "invalid genre id", h.logger)
			return
		}
		list, err = h.svc.GamesByGenre(ctx, id)
	case query.Has("developer"):
		id := strings.TrimSpace(query.Get("developer"))
		if id == "" {
			writeError(w, r, nethttp.StatusBadRequest, "invalid developer id", h.logger)
			return
		}
		list, err = h.svc.GamesByDeveloper(ctx, id)
	case query.Has("platform"):
		p := games.Platform(query.Get("platform"))
		if !p.Valid() {
			writeError(w, r, nethttp.StatusBadRequest, "unknown platform", h.logger)
			return
		}
		list, err = h.svc.GamesByPlatform(ctx, p)
	case query.Has("rating"):
		rt := games.Rating(query.Get("rating"))
		if !rt.Valid() {
			writeError(w, r, nethttp.StatusBadRequest, "unknown rating", h.logger)
			return
		}
		list, err = h.svc.GamesByRating(ctx, rt)
	default:
		list, err = h.svc.Games(ctx)
	}
	if err != nil {
		writeCatalogError(w, r, err, h.logger)
		return
	}

	logging.Debug(loggerFromContext(r, h.logger), "served games", logging.FieldCount, len(list))
	writeJSON(w, nethttp.StatusOK, gamesResponse{Games: list, Count: len(list)}, h.logger)
}

// GameBySlug returns a specific game if present.
func (h *Handler) GameBySlug(w nethttp.ResponseWriter, r *nethttp.Request) {
	slug, ok := pathSlug(r)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game slug", h.logger)
		return
	}
	game, err := h.svc.GameBySlug(r.Context(), slug)
	if err != nil {
		writeCatalogError(w, r, err, h.logger)
		return
	}
	if game == nil {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

// Genres lists genres, each with its accent color resolved.
func (h *Handler) Genres(w nethttp.ResponseWriter, r *nethttp.Request) {
	list, err := h.svc.Genres(r.Context())
	if err != nil {
		writeCatalogError(w, r, err, h.logger)
		return
	}
	views := make([]GenreView, 0, len(list))
	for _, g := range list {
		views = append(views, h.genreView(g))
	}
	writeJSON(w, nethttp.StatusOK, genresResponse{Genres: views, Count: len(views)}, h.logger)
}

// GenreBySlug returns a specific genre if present.
func (h *Handler) GenreBySlug(w nethttp.ResponseWriter, r *nethttp.Request) {
	slug, ok := pathSlug(r)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid genre slug", h.logger)
		return
	}
	genre, err := h.svc.GenreBySlug(r.Context(), slug)
	if err != nil {
		writeCatalogError(w, r, err, h.logger)
		return
	}
	if genre == nil {
		writeError(w, r, nethttp.StatusNotFound, "genre not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.genreView(*genre), h.logger)
}

// Developers lists developers.
func (h *Handler) Developers(w nethttp.ResponseWriter, r *nethttp.Request) {
	list, err := h.svc.Developers(r.Context())
	if err != nil {
		writeCatalogError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, developersResponse{Developers: list, Count: len(list)}, h.logger)
}

// DeveloperBySlug returns a specific developer if present.
func (h *Handler) DeveloperBySlug(w nethttp.ResponseWriter, r *nethttp.Request) {
	slug, ok := pathSlug(r)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid developer slug", h.logger)
		return
	}
	dev, err := h.svc.DeveloperBySlug(r.Context(), slug)
	if err != nil {
		writeCatalogError(w, r, err, h.logger)
		return
	}
	if dev == nil {
		writeError(w, r, nethttp.StatusNotFound, "developer not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, dev, h.logger)
}

func (h *Handler) genreView(g genres.Genre) GenreView {
	return GenreView{Genre: g, AccentColor: h.palette.GenreAccent(g.Slug, g.Metadata.GenreColor)}
}

func pathSlug(r *nethttp.Request) (string, bool) {
	slug := r.PathValue("slug")
	if slug == "" || strings.ContainsAny(slug, " \t/") {
		return "", false
	}
	return slug, true
}
