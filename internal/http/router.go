package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/game-catalog-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)
	mux.HandleFunc("GET /theme", handler.Theme)
	mux.HandleFunc("GET /games", handler.Games)
	mux.HandleFunc("GET /games/{slug}", handler.GameBySlug)
	mux.HandleFunc("GET /genres", handler.Genres)
	mux.HandleFunc("GET /genres/{slug}", handler.GenreBySlug)
	mux.HandleFunc("GET /developers", handler.Developers)
	mux.HandleFunc("GET /developers/{slug}", handler.DeveloperBySlug)
	return mux
}
