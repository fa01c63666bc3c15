package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/targetform/pkg/logger"
	"github.com/dmitrymomot/targetform/pkg/requestid"
	"github.com/dmitrymomot/targetform/pkg/validator"
)

// ErrorPageParams is passed to the configured error page.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders HTML errors. Without it plain text is written.
	ErrorPage func(ErrorPageParams) templ.Component
}

// ErrorInfo is the classified form of an error.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	var valErr ValidationError
	if errors.As(err, &valErr) {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = valErr.Error()
	} else if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = FromValidator(errs).Error()
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// WantsJSON reports whether the client asked for JSON or sent JSON.
func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// NewErrorHandler returns an ErrorHandler that logs every error with the
// request id and answers with JSON or HTML depending on the request.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(reqID),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if WantsJSON(r) {
			status := info.StatusCode
			resp := JSONError(err, WithJSONStatus(status))
			if renderErr := resp.Render(w, r); renderErr != nil {
				log.Error("failed to render json error", logger.RequestID(reqID), logger.Error(renderErr))
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(w, info.Message, info.StatusCode)
			return
		}

		page := Templ(cfg.ErrorPage(ErrorPageParams{
			Error:      info.Message,
			StatusCode: info.StatusCode,
			RequestID:  reqID,
		}), WithTemplStatus(info.StatusCode))
		if renderErr := page.Render(w, r); renderErr != nil {
			log.Error("failed to render error page",
				logger.RequestID(reqID),
				logger.Error(renderErr),
				logger.Event("render_error_page"),
			)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}
}
