package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form creates a binder for application/x-www-form-urlencoded and multipart/form-data bodies.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Fields absent from the request keep their zero value, so a missing
// string field reads as "".
//
// GET, HEAD and DELETE requests carry no form body; for them Form returns
// ErrBinderNotApplicable.
//
// Example:
//
//	type CreateTargetRequest struct {
//		Name  string `form:"targetname"`
//		Owner string `form:"targetowner"`
//	}
//
//	r.Post("/targets", handler.Wrap(create,
//		handler.WithBinders[CreateTargetRequest](binder.Form()),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodDelete:
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: missing content-type header, expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		// Extract media type without parameters
		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}

		var values map[string][]string

		switch {
		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case mediaType == "multipart/form-data":
			_, params, err := mime.ParseMediaType(contentType)
			if err != nil {
				return fmt.Errorf("%w: malformed content type with boundary", ErrFailedToParseForm)
			}
			if boundary, ok := params["boundary"]; !ok || !validateBoundary(boundary) {
				return fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
			}

			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = make(map[string][]string)
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}

// validateBoundary checks the multipart boundary against RFC 2046:
// 1 to 70 characters from a restricted set, not ending with a space.
func validateBoundary(boundary string) bool {
	if len(boundary) == 0 || len(boundary) > 70 {
		return false
	}
	if strings.HasSuffix(boundary, " ") {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return true
}
