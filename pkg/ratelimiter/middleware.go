package ratelimiter

import (
	"context"
	"net/http"
	"strconv"
)

// Limiter is satisfied by *Bucket.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// KeyFunc extracts the bucket key from a request. An empty key bypasses the limiter.
type KeyFunc func(r *http.Request) string

type middlewareOptions struct {
	skip    func(r *http.Request) bool
	limited http.Handler
	failed  func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareOption func(*middlewareOptions)

// WithSkipper bypasses the limiter for requests where skip returns true.
func WithSkipper(skip func(r *http.Request) bool) MiddlewareOption {
	return func(o *middlewareOptions) {
		o.skip = skip
	}
}

// WithLimitedHandler replaces the default 429 plain text response.
func WithLimitedHandler(h http.Handler) MiddlewareOption {
	return func(o *middlewareOptions) {
		o.limited = h
	}
}

// WithStoreErrorHandler replaces the default 500 response written when the
// limiter itself fails.
func WithStoreErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(o *middlewareOptions) {
		o.failed = fn
	}
}

// SkipSafeMethods lets GET, HEAD and OPTIONS through unlimited.
func SkipSafeMethods(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// Middleware limits requests per key and sets the X-RateLimit-* headers.
func Middleware(l Limiter, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	o := middlewareOptions{
		limited: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
		failed: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if o.skip != nil && o.skip(r) {
				next.ServeHTTP(w, r)
				return
			}
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := l.Allow(r.Context(), k)
			if err != nil {
				o.failed(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if retry := int(res.RetryAfter().Seconds()); retry > 0 {
					h.Set("Retry-After", strconv.Itoa(retry))
				}
				o.limited.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
