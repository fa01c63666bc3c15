// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks and health-check handlers.
//
// Run opens the listener, runs the start hooks and serves until the context
// is canceled, SIGINT/SIGTERM is received or Shutdown is called. Shutdown
// waits at most the configured shutdown timeout and then runs the stop hooks.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Errors are wrapped with ErrStart and ErrShutdown so callers can test them
// with errors.Is.
//
// LivenessHandler and ReadinessHandler are plain http.HandlerFuncs meant for
// /health/live and /health/ready. Readiness checks run with the request
// context, so probe timeouts cancel slow dependencies.
package httpserver
