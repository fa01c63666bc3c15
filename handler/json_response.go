package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/dmitrymomot/targetform/pkg/validator"
)

// JSONResponse is the envelope every JSON endpoint writes.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

// Render encodes into a buffer first so an encoding error leaves the
// response untouched for the error handler.
func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(j.body); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	_, err := buf.WriteTo(w)
	return err
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets the HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta sets the meta object.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON wraps v into the data field. Errors are routed to the error field
// with a matching status.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err into the error field.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}
	r.body.Error = errorToDetail(err, &r.status)

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error, status *int) *ErrorDetail {
	if *status == http.StatusOK {
		*status = http.StatusInternalServerError
	}

	var valErr ValidationError
	if errors.As(err, &valErr) {
		return validationDetail(valErr, status)
	}
	if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
		return validationDetail(FromValidator(errs), status)
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	return &ErrorDetail{Code: "internal_error", Message: err.Error()}
}

func validationDetail(valErr ValidationError, status *int) *ErrorDetail {
	*status = http.StatusUnprocessableEntity
	detail := &ErrorDetail{
		Code:    "validation_error",
		Message: valErr.Error(),
	}
	if len(valErr) > 0 {
		detail.Details = make(map[string][]string, len(valErr))
		maps.Copy(detail.Details, valErr)
	}
	return detail
}
