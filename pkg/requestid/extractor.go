package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/targetform/pkg/logger"
)

// LoggerExtractor adds "request_id" to log records whose context carries one.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
