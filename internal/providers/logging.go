package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/game-catalog-service/internal/logging"
)

// logWithProvider emits a log entry tagged with the provider name. A nil logger is a no-op.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
