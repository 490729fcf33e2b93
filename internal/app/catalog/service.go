package catalog

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/game-catalog-service/internal/domain"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/developers"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/genres"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
	"github.com/preston-bernstein/game-catalog-service/internal/metrics"
	"github.com/preston-bernstein/game-catalog-service/internal/providers"
)

const (
	depthFlat     = 0
	depthExpanded = 1
)

// Service is the read façade over the content store. Every call issues one
// upstream request and shares no state with other calls.
type Service struct {
	store    providers.ObjectStore
	logger   *slog.Logger
	recorder *metrics.Recorder
	tracer   trace.Tracer
	locale   language.Tag
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithRecorder enables per-operation metrics.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(s *Service) { s.recorder = rec }
}

// WithTracer sets the tracer used for operation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithLocale sets the collation locale for title ordering.
func WithLocale(tag language.Tag) Option {
	return func(s *Service) { s.locale = tag }
}

// NewService constructs a Service reading from the given store.
func NewService(store providers.ObjectStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		tracer: otel.Tracer("github.com/preston-bernstein/game-catalog-service/internal/app/catalog"),
		locale: language.English,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func gamesQuery(metadata map[string]any) providers.Query {
	return providers.Query{
		Type:     string(domain.KindGames),
		Metadata: metadata,
		Props:    providers.DefaultProps,
		Depth:    depthExpanded,
	}
}

// Games lists every game with its genre and developer embedded, featured
// games first and then by title.
func (s *Service) Games(ctx context.Context) ([]games.Game, error) {
	list, err := listObjects(ctx, s, "Games", MsgGames, gamesQuery(nil), decodeGame)
	if err != nil {
		return nil, err
	}
	SortGames(list, s.locale)
	return list, nil
}

// GameBySlug returns the game with the given slug, or nil when absent.
func (s *Service) GameBySlug(ctx context.Context, slug string) (*games.Game, error) {
	q := gamesQuery(nil)
	q.Slug = slug
	return findObject(ctx, s, "GameBySlug", MsgGame, q, decodeGame)
}

// FeaturedGames lists games flagged as featured, in store order.
func (s *Service) FeaturedGames(ctx context.Context) ([]games.Game, error) {
	q := gamesQuery(map[string]any{"featured_game": true})
	return listObjects(ctx, s, "FeaturedGames", MsgFeaturedGames, q, decodeGame)
}

// GamesByGenre lists games whose genre is the given genre id.
func (s *Service) GamesByGenre(ctx context.Context, genreID string) ([]games.Game, error) {
	q := gamesQuery(map[string]any{"genre": genreID})
	return listObjects(ctx, s, "GamesByGenre", MsgGamesByGenre, q, decodeGame)
}

// GamesByDeveloper lists games whose developer is the given developer id.
func (s *Service) GamesByDeveloper(ctx context.Context, developerID string) ([]games.Game, error) {
	q := gamesQuery(map[string]any{"developer": developerID})
	return listObjects(ctx, s, "GamesByDeveloper", MsgGamesByDeveloper, q, decodeGame)
}

// GamesByPlatform lists games available on the given platform.
func (s *Service) GamesByPlatform(ctx context.Context, platform games.Platform) ([]games.Game, error) {
	q := gamesQuery(map[string]any{"platform": string(platform)})
	return listObjects(ctx, s, "GamesByPlatform", MsgGamesByPlatform, q, decodeGame)
}

// GamesByRating lists games carrying the given rating label.
func (s *Service) GamesByRating(ctx context.Context, rating games.Rating) ([]games.Game, error) {
	q := gamesQuery(map[string]any{"rating": string(rating)})
	return listObjects(ctx, s, "GamesByRating", MsgGamesByRating, q, decodeGame)
}

// Genres lists every genre in store order.
func (s *Service) Genres(ctx context.Context) ([]genres.Genre, error) {
	q := providers.Query{Type: string(domain.KindGenres), Props: providers.DefaultProps, Depth: depthExpanded}
	return listObjects(ctx, s, "Genres", MsgGenres, q, decodeGenre)
}

// GenreBySlug returns the genre with the given slug, or nil when absent. It is
// the only lookup that leaves relations unexpanded.
func (s *Service) GenreBySlug(ctx context.Context, slug string) (*genres.Genre, error) {
	q := providers.Query{Type: string(domain.KindGenres), Slug: slug, Props: providers.DefaultProps, Depth: depthFlat}
	return findObject(ctx, s, "GenreBySlug", MsgGenre, q, decodeGenre)
}

// Developers lists every developer in store order.
func (s *Service) Developers(ctx context.Context) ([]developers.Developer, error) {
	q := providers.Query{Type: string(domain.KindDevelopers), Props: providers.DefaultProps, Depth: depthExpanded}
	return listObjects(ctx, s, "Developers", MsgDevelopers, q, decodeDeveloper)
}

// DeveloperBySlug returns the developer with the given slug, or nil when absent.
func (s *Service) DeveloperBySlug(ctx context.Context, slug string) (*developers.Developer, error) {
	q := providers.Query{Type: string(domain.KindDevelopers), Slug: slug, Props: providers.DefaultProps, Depth: depthExpanded}
	return findObject(ctx, s, "DeveloperBySlug", MsgDeveloper, q, decodeDeveloper)
}

// listObjects runs a list query. Not-found yields an empty slice and records
// without metadata are skipped.
func listObjects[T any](ctx context.Context, s *Service, op, msg string, q providers.Query, decode decodeFunc[T]) ([]T, error) {
	ctx, span := s.startSpan(ctx, op, q)
	defer span.End()
	start := s.now()

	objects, err := s.store.FindObjects(ctx, q)
	if err != nil {
		if providers.IsNotFound(err) {
			s.finish(op, metrics.OutcomeNotFound, start)
			return []T{}, nil
		}
		return nil, s.fail(ctx, span, op, msg, q, err, start)
	}

	out := make([]T, 0, len(objects))
	for _, obj := range objects {
		if !obj.HasMetadata() {
			continue
		}
		item, err := decode(obj)
		if err != nil {
			return nil, s.fail(ctx, span, op, msg, q, err, start)
		}
		out = append(out, item)
	}

	span.SetAttributes(attribute.Int("catalog.count", len(out)))
	s.finish(op, metrics.OutcomeOK, start)
	return out, nil
}

// findObject runs a single-object query. Not-found and records without
// metadata both yield nil.
func findObject[T any](ctx context.Context, s *Service, op, msg string, q providers.Query, decode decodeFunc[T]) (*T, error) {
	ctx, span := s.startSpan(ctx, op, q)
	defer span.End()
	start := s.now()

	obj, err := s.store.FindObject(ctx, q)
	if err != nil {
		if providers.IsNotFound(err) {
			s.finish(op, metrics.OutcomeNotFound, start)
			return nil, nil
		}
		return nil, s.fail(ctx, span, op, msg, q, err, start)
	}
	if !obj.HasMetadata() {
		s.finish(op, metrics.OutcomeNotFound, start)
		return nil, nil
	}

	item, err := decode(obj)
	if err != nil {
		return nil, s.fail(ctx, span, op, msg, q, err, start)
	}
	s.finish(op, metrics.OutcomeOK, start)
	return &item, nil
}

func (s *Service) startSpan(ctx context.Context, op string, q providers.Query) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.String("catalog.type", q.Type)}
	if q.Slug != "" {
		attrs = append(attrs, attribute.String("catalog.slug", q.Slug))
	}
	return s.tracer.Start(ctx, "catalog."+op, trace.WithAttributes(attrs...))
}

func (s *Service) finish(op, outcome string, start time.Time) {
	s.recorder.RecordOperation(op, outcome, s.now().Sub(start))
}

func (s *Service) fail(ctx context.Context, span trace.Span, op, msg string, q providers.Query, cause error, start time.Time) error {
	span.RecordError(cause)
	span.SetStatus(codes.Error, msg)
	s.finish(op, metrics.OutcomeError, start)

	args := []any{
		slog.String(logging.FieldOperation, op),
		slog.String(logging.FieldObjectType, q.Type),
	}
	if q.Slug != "" {
		args = append(args, slog.String(logging.FieldSlug, q.Slug))
	}
	logging.Error(logging.FromContext(ctx, s.logger), msg, cause, args...)
	return &Error{Op: op, Message: msg, Err: cause}
}
