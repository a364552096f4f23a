package formapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/httpserver"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

// Controller is the part of *form.Controller the API drives.
type Controller interface {
	Name() string
	HandleChange(field string, raw any, kind form.InputKind)
	HandleBlur(field string)
	SetFieldValue(field string, value any)
	Submit()
	Reset()
	Snapshot() form.State
	WaitValidation(ctx context.Context) error
}

// Loader reads persisted snapshots back. Every store in this module implements it.
type Loader interface {
	Load(ctx context.Context, key string) ([]byte, error)
}

// StatusFunc maps a field's touched flag and the current errors to a feedback status.
type StatusFunc func(touched bool, errs form.Errors, field string) string

// API maps JSON input events onto a form controller.
type API struct {
	ctrl          Controller
	store         Loader
	status        StatusFunc
	log           *slog.Logger
	checks        []httpserver.Check
	options       map[string]any
	settleTimeout time.Duration
}

// New creates an API for ctrl.
func New(ctrl Controller, opts ...Option) *API {
	a := &API{
		ctrl:          ctrl,
		status:        defaultStatus,
		log:           slog.Default(),
		settleTimeout: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("formapi"), logger.Form(ctrl.Name()))
	return a
}

// Handler returns the router serving every route.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(a.log))
	r.Use(middleware.Recoverer)

	r.Get("/", a.getState)
	r.Post("/change", a.postChange)
	r.Post("/blur", a.postBlur)
	r.Post("/set", a.postSet)
	r.Post("/submit", a.postSubmit)
	r.Post("/reset", a.postReset)
	r.Get("/persisted", a.getPersisted)
	r.Get("/options", a.getOptions)
	r.Get("/healthz", httpserver.HealthCheckHandler(a.log, a.checks...))

	return r
}

func defaultStatus(touched bool, errs form.Errors, field string) string {
	if !touched {
		return ""
	}
	if _, ok := errs[field]; ok {
		return "error"
	}
	return "success"
}
