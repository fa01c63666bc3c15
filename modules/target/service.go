package target

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/targetform/handler"
	"github.com/dmitrymomot/targetform/pkg/binder"
	"github.com/dmitrymomot/targetform/pkg/logger"
	"github.com/dmitrymomot/targetform/pkg/validator"
)

// MsgNotValid is shown on the form page when a rejection carries no message.
const MsgNotValid = "Target definition is not valid"

// Service serves the target definition form and the targets API.
type Service struct {
	cfg          Config
	storage      Storage
	views        *Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler
}

// NewService wires a Service. Nil views and logger fall back to the
// built-in pages and a discarding logger.
func NewService(cfg Config, storage Storage, views *Views, log *slog.Logger) *Service {
	if views == nil {
		views = DefaultViews()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		cfg:     cfg,
		storage: storage,
		views:   views,
		log:     log,
		errorHandler: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			ErrorPage: views.ErrorPage,
		}),
	}
}

// Limited answers 429 through the service error handler, as JSON or as the
// error page depending on the request.
func (s *Service) Limited() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
	})
}

// Handle returns the router to mount, e.g. under /targets.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.list,
		handler.WithBinders[Filter](binder.Query()),
		handler.WithErrorHandler[Filter](s.errorHandler),
	))
	r.Get("/new", handler.Wrap(s.newForm,
		handler.WithBinders[Input](binder.Query()),
		handler.WithErrorHandler[Input](s.errorHandler),
	))
	r.Post("/", handler.Wrap(s.create,
		handler.WithBinders[Input](binder.Form()),
		handler.WithErrorHandler[Input](s.errorHandler),
	))
	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[Input](binder.Form()),
		handler.WithErrorHandler[Input](s.errorHandler),
	))
	r.Get("/{id}", handler.Wrap(s.get,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))
	r.Post("/{id}/achieved", handler.Wrap(s.recordAchieved,
		handler.WithBinders[AchievedRequest](binder.Form()),
		handler.WithErrorHandler[AchievedRequest](s.errorHandler),
	))
	r.Delete("/{id}", handler.Wrap(s.delete,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))

	return r
}

func (s *Service) list(ctx handler.Context, f Filter) handler.Response {
	if err := validator.Apply(
		validator.MaxLenString("name", f.Name, s.maxFilterLength()),
		validator.MaxLenString("owner", f.Owner, s.maxFilterLength()),
	); err != nil {
		return handler.Error(err)
	}

	targets, err := s.storage.List(ctx, f)
	if err != nil {
		return handler.Error(err)
	}

	reports := make([]Report, 0, len(targets))
	for _, t := range targets {
		reports = append(reports, NewReport(t))
	}
	return handler.JSON(reports, handler.WithJSONMeta(map[string]any{"total": len(reports)}))
}

func (s *Service) newForm(ctx handler.Context, in Input) handler.Response {
	action := collectionPath(ctx.Request(), "/new")
	if action == "" {
		action = "/"
	}
	return handler.Templ(s.views.FormPage(FormPageParams{
		Action: action,
		Input:  in,
	}))
}

func (s *Service) validate(ctx handler.Context, in Input) handler.Response {
	return handler.JSON(Validate(in, s.cfg.Options()...))
}

func (s *Service) create(ctx handler.Context, in Input) handler.Response {
	r := ctx.Request()
	wantsJSON := handler.WantsJSON(r)

	d := Validate(in, s.cfg.Options()...)
	if !d.Accepted {
		s.log.InfoContext(ctx, "target rejected",
			logger.TargetName(in.Name),
			logger.Decision(d.Accepted, d.Message),
			logger.Component("targets"),
		)
		if wantsJSON {
			return handler.JSON(d, handler.WithJSONStatus(http.StatusUnprocessableEntity))
		}
		msg := d.Message
		if msg == "" {
			msg = MsgNotValid
		}
		return s.formWithMessage(r, in, msg, http.StatusUnprocessableEntity)
	}

	t, err := New(in, s.cfg.Options()...)
	if err != nil {
		return handler.Error(err)
	}

	if err := s.storage.Create(ctx, t); err != nil {
		if !errors.Is(err, ErrDuplicateName) {
			return handler.Error(err)
		}
		if wantsJSON {
			return handler.Error(errors.Join(handler.ErrConflict, err))
		}
		return s.formWithMessage(r, in, "Target with this name already exists", http.StatusConflict)
	}

	s.log.InfoContext(ctx, "target created",
		logger.TargetID(t.ID),
		logger.TargetName(t.Name),
		logger.Component("targets"),
	)

	if wantsJSON {
		return handler.JSON(NewReport(t), handler.WithJSONStatus(http.StatusCreated))
	}
	return handler.Redirect(collectionPath(r, "") + "/" + t.ID.String())
}

func (s *Service) get(ctx handler.Context, _ struct{}) handler.Response {
	id, err := pathID(ctx.Request())
	if err != nil {
		return handler.Error(err)
	}

	t, err := s.storage.Get(ctx, id)
	if err != nil {
		return handler.Error(storageError(err))
	}
	return handler.JSON(NewReport(t))
}

// AchievedRequest reports a metric reached by a run.
type AchievedRequest struct {
	Metric     string `form:"metric"`
	MetricUnit string `form:"metricunit"`
}

func (s *Service) recordAchieved(ctx handler.Context, req AchievedRequest) handler.Response {
	id, err := pathID(ctx.Request())
	if err != nil {
		return handler.Error(err)
	}

	value, _ := validator.ParseLeadingFloat(req.Metric)
	if err := validator.ApplyFirst(
		validator.RequiredString("metric", req.Metric),
		validator.NumericString("metric", req.Metric),
		validator.FiniteNumber("metric", value),
		validator.MinNum("metric", value, 0),
	); err != nil {
		return handler.Error(err)
	}

	t, err := s.storage.RecordAchieved(ctx, id, value, req.MetricUnit)
	if err != nil {
		return handler.Error(storageError(err))
	}

	s.log.InfoContext(ctx, "achieved metric recorded",
		logger.TargetID(t.ID),
		slog.Float64("value", value),
		slog.Float64("achieved", t.AchievedMetric),
		logger.Component("targets"),
	)
	return handler.JSON(NewReport(t))
}

func (s *Service) delete(ctx handler.Context, _ struct{}) handler.Response {
	id, err := pathID(ctx.Request())
	if err != nil {
		return handler.Error(err)
	}

	if err := s.storage.Delete(ctx, id); err != nil {
		return handler.Error(storageError(err))
	}

	s.log.InfoContext(ctx, "target deleted",
		logger.TargetID(id),
		logger.Component("targets"),
	)
	return handler.Empty()
}

func (s *Service) formWithMessage(r *http.Request, in Input, msg string, status int) handler.Response {
	return handler.Templ(s.views.FormPage(FormPageParams{
		Action:  r.URL.Path,
		Input:   in,
		Message: msg,
	}), handler.WithTemplStatus(status))
}

func (s *Service) maxFilterLength() int {
	if s.cfg.MaxFilterLength > 0 {
		return s.cfg.MaxFilterLength
	}
	return 255
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.Join(handler.ErrNotFound, ErrNotFound)
	}
	return id, nil
}

// storageError attaches an HTTP status to the storage sentinels.
func storageError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return errors.Join(handler.ErrNotFound, err)
	case errors.Is(err, ErrDuplicateName):
		return errors.Join(handler.ErrConflict, err)
	default:
		return err
	}
}

// collectionPath is the request path with suffix and any trailing slash removed.
func collectionPath(r *http.Request, suffix string) string {
	p := strings.TrimSuffix(r.URL.Path, suffix)
	return strings.TrimSuffix(p, "/")
}
