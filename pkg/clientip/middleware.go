package clientip

import "net/http"

// Middleware resolves the client IP once and stores it in the request context.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		next.ServeHTTP(w, req.WithContext(WithContext(req.Context(), r.FromRequest(req))))
	})
}

// Key returns the client IP stored by Middleware, for use as a rate limit key.
// Requests that did not pass Middleware yield "".
func Key(req *http.Request) string {
	return FromContext(req.Context())
}
