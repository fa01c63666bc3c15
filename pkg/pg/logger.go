package pg

import (
	"context"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
)

// logger is the subset of *slog.Logger used for migration output.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// gooseLogger routes goose's Printf-style output into structured logs.
type gooseLogger struct {
	log logger
}

func newGooseLogger(log logger) goose.Logger {
	return &gooseLogger{log: log}
}

func (a *gooseLogger) Fatalf(format string, v ...any) {
	a.log.ErrorContext(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

func (a *gooseLogger) Printf(format string, v ...any) {
	a.log.InfoContext(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}
