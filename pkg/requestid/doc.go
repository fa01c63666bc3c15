// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a client-supplied X-Request-ID header when it is 1 to 128
// characters of [a-zA-Z0-9_-]; otherwise it generates a UUID with
// github.com/google/uuid. The ID is stored in the request context
// (FromContext) and echoed in the response header.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
