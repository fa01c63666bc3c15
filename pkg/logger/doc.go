// Package logger builds *slog.Logger instances from functional options and
// adds attributes pulled from context.Context on every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it in LogHandlerDecorator, which runs each registered
// ContextExtractor before delegating. The request ID extractor from
// pkg/requestid is the usual one.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "targetd"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "target created",
//	    logger.TargetID(t.ID),
//	    logger.Component("targets"),
//	)
//
// Attribute helpers (Error, RequestID, TargetID, ...) return an empty slog.Attr
// for nil or empty input, which slog drops, so callers need no nil checks.
package logger
