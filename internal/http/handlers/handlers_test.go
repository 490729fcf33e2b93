package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/game-catalog-service/internal/app/catalog"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/providers"
	"github.com/preston-bernstein/game-catalog-service/internal/testutil"
	"github.com/preston-bernstein/game-catalog-service/internal/theme"
)

func newFixtureMux() http.Handler {
	h := NewHandler(testutil.NewFixtureCatalog(), nil, nil)
	return routes(h)
}

// routes mirrors the production router so path values resolve.
func routes(h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /theme", h.Theme)
	mux.HandleFunc("GET /games", h.Games)
	mux.HandleFunc("GET /games/{slug}", h.GameBySlug)
	mux.HandleFunc("GET /genres", h.Genres)
	mux.HandleFunc("GET /genres/{slug}", h.GenreBySlug)
	mux.HandleFunc("GET /developers", h.Developers)
	mux.HandleFunc("GET /developers/{slug}", h.DeveloperBySlug)
	return mux
}

type errorPayload struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

func TestHealthAndReady(t *testing.T) {
	mux := newFixtureMux()

	rr := testutil.Serve(mux, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = testutil.Serve(mux, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.JSONEq(t, `{"status":"ready"}`, rr.Body.String())
}

func TestHealthReportsShuttingDownWhenContextDone(t *testing.T) {
	h := NewHandler(testutil.NewFixtureCatalog(), nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(ctx)

	rr := httptest.NewRecorder()
	h.Health(rr, req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestThemeReturnsPalette(t *testing.T) {
	rr := testutil.Serve(newFixtureMux(), http.MethodGet, "/theme", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var p theme.Palette
	testutil.DecodeJSON(t, rr, &p)
	assert.Equal(t, "#8b5cf6", p.Colors.Gaming.Accent)
	assert.Equal(t, "#ff4444", p.Colors.Genres["action"])
}

func TestGamesListsSortedCatalog(t *testing.T) {
	rr := testutil.Serve(newFixtureMux(), http.MethodGet, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body gamesResponse
	testutil.DecodeJSON(t, rr, &body)
	require.Equal(t, 6, body.Count)
	assert.Equal(t, "ashen-crown", body.Games[0].Slug)
	assert.True(t, body.Games[0].Featured())
	require.NotNil(t, body.Games[0].Genre(), "relations stay embedded over the wire")
	assert.Equal(t, "rpg", body.Games[0].Genre().Slug)
}

func TestGamesFilters(t *testing.T) {
	mux := newFixtureMux()

	tests := []struct {
		query string
		want  int
	}{
		{query: "?featured=true", want: 2},
		{query: "?genre=genre-action", want: 2},
		{query: "?developer=dev-quiet-gears", want: 1},
		{query: "?platform=Nintendo+Switch", want: 2},
		{query: "?rating=Teen", want: 3},
		{query: "?genre=genre-missing", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rr := testutil.Serve(mux, http.MethodGet, "/games"+tt.query, nil)
			testutil.AssertStatus(t, rr, http.StatusOK)
			var body gamesResponse
			testutil.DecodeJSON(t, rr, &body)
			assert.Equal(t, tt.want, body.Count)
			assert.Len(t, body.Games, tt.want)
		})
	}
}

func TestGamesRejectsBadFilters(t *testing.T) {
	mux := newFixtureMux()

	for _, query := range []string{
		"?genre=a&developer=b",
		"?featured=false",
		"?platform=Dreamcast",
		"?rating=Adults",
		"?genre=",
	} {
		t.Run(query, func(t *testing.T) {
			rr := testutil.Serve(mux, http.MethodGet, "/games"+query, nil)
			testutil.AssertStatus(t, rr, http.StatusBadRequest)
		})
	}
}

func TestSingleLookups(t *testing.T) {
	mux := newFixtureMux()

	rr := testutil.Serve(mux, http.MethodGet, "/games/zero-hour", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var g games.Game
	testutil.DecodeJSON(t, rr, &g)
	assert.Equal(t, "Zero Hour", g.Title)

	rr = testutil.Serve(mux, http.MethodGet, "/developers/lantern-interactive", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(mux, http.MethodGet, "/genres/puzzle", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var genre GenreView
	testutil.DecodeJSON(t, rr, &genre)
	assert.Equal(t, "#8b5cf6", genre.AccentColor, "falls back to the gaming accent")
}

func TestSingleLookupsNotFound(t *testing.T) {
	mux := newFixtureMux()

	cases := map[string]string{
		"/games/nonexistent":      "game not found",
		"/genres/nonexistent":     "genre not found",
		"/developers/nonexistent": "developer not found",
	}
	for path, msg := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Request-ID", "req-1")
		rr := testutil.ServeRequest(mux, req)

		testutil.AssertStatus(t, rr, http.StatusNotFound)
		var body errorPayload
		testutil.DecodeJSON(t, rr, &body)
		assert.Equal(t, msg, body.Error)
		assert.Equal(t, "req-1", body.RequestID)
	}
}

func TestGenresCarryAccentColor(t *testing.T) {
	rr := testutil.Serve(newFixtureMux(), http.MethodGet, "/genres", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body genresResponse
	testutil.DecodeJSON(t, rr, &body)
	require.Len(t, body.Genres, 4)

	colors := map[string]string{}
	for _, g := range body.Genres {
		colors[g.Slug] = g.AccentColor
	}
	assert.Equal(t, "#ff4444", colors["action"])
	assert.Equal(t, "#8b5cf6", colors["puzzle"])
}

func TestDevelopersList(t *testing.T) {
	rr := testutil.Serve(newFixtureMux(), http.MethodGet, "/developers", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body developersResponse
	testutil.DecodeJSON(t, rr, &body)
	assert.Equal(t, 3, body.Count)
}

func TestCatalogFailuresMapToBadGateway(t *testing.T) {
	svc := testutil.NewCatalogWithStore(testutil.ErrStore{Err: errors.New("upstream exploded")})
	mux := routes(NewHandler(svc, nil, nil))

	cases := map[string]string{
		"/games":                 catalog.MsgGames,
		"/games?featured=true":   catalog.MsgFeaturedGames,
		"/games?rating=Everyone": catalog.MsgGamesByRating,
		"/games/zero-hour":       catalog.MsgGame,
		"/genres":                catalog.MsgGenres,
		"/genres/rpg":            catalog.MsgGenre,
		"/developers":            catalog.MsgDevelopers,
		"/developers/x":          catalog.MsgDeveloper,
	}
	for path, msg := range cases {
		rr := testutil.Serve(mux, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusBadGateway)
		assert.NotContains(t, rr.Body.String(), "exploded")
		assert.Equal(t, msg, testutil.ErrorMessage(t, rr), path)
	}
}

func TestCatalogUnavailableStoreMapsToBadGateway(t *testing.T) {
	svc := testutil.NewCatalogWithStore(testutil.UnavailableStore{})
	rr := testutil.Serve(routes(NewHandler(svc, nil, nil)), http.MethodGet, "/games?platform=PC", nil)

	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestNotFoundStoreYieldsEmptyList(t *testing.T) {
	svc := testutil.NewCatalogWithStore(testutil.ErrStore{Err: providers.ErrNotFound})
	rr := testutil.Serve(routes(NewHandler(svc, nil, nil)), http.MethodGet, "/developers", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.JSONEq(t, `{"developers":[],"count":0}`, rr.Body.String())
}

type slugRecordingStore struct {
	slugs []string
}

func (s *slugRecordingStore) FindObjects(_ context.Context, q providers.Query) ([]providers.Object, error) {
	return nil, providers.ErrNotFound
}

func (s *slugRecordingStore) FindObject(_ context.Context, q providers.Query) (providers.Object, error) {
	s.slugs = append(s.slugs, q.Slug)
	return providers.Object{}, providers.ErrNotFound
}

func TestSlugIsUnescapedOnce(t *testing.T) {
	store := &slugRecordingStore{}
	mux := routes(NewHandler(testutil.NewCatalogWithStore(store), nil, nil))

	for _, path := range []string{"/games/a%2525b", "/genres/a%2525b", "/developers/a%2525b"} {
		rr := testutil.Serve(mux, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusNotFound)
	}

	assert.Equal(t, []string{"a%25b", "a%25b", "a%25b"}, store.slugs)
}
