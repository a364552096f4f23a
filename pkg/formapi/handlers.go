package formapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/logger"
	"github.com/dmitrymomot/formstate/pkg/storage"
)

func (a *API) getState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.view())
}

func (a *API) postChange(w http.ResponseWriter, r *http.Request) {
	var req changeRequest
	if err := bindJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Field) == "" {
		writeError(w, ErrMissingField)
		return
	}
	kind := form.InputKind(req.Kind)
	if kind == "" {
		kind = form.InputText
	}
	a.ctrl.HandleChange(req.Field, req.Value, kind)
	a.respondSettled(w, r, http.StatusOK)
}

func (a *API) postBlur(w http.ResponseWriter, r *http.Request) {
	var req blurRequest
	if err := bindJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Field) == "" {
		writeError(w, ErrMissingField)
		return
	}
	a.ctrl.HandleBlur(req.Field)
	a.respondSettled(w, r, http.StatusOK)
}

func (a *API) postSet(w http.ResponseWriter, r *http.Request) {
	var req setRequest
	if err := bindJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Field) == "" {
		writeError(w, ErrMissingField)
		return
	}
	a.ctrl.SetFieldValue(req.Field, req.Value)
	a.respondSettled(w, r, http.StatusOK)
}

func (a *API) postSubmit(w http.ResponseWriter, r *http.Request) {
	a.ctrl.Submit()
	a.respondSettled(w, r, http.StatusAccepted)
}

func (a *API) postReset(w http.ResponseWriter, r *http.Request) {
	a.ctrl.Reset()
	writeJSON(w, http.StatusOK, a.view())
}

func (a *API) getPersisted(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		writeError(w, ErrPersistenceDisabled)
		return
	}
	data, err := a.store.Load(r.Context(), a.ctrl.Name())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, ErrNotPersisted)
			return
		}
		a.log.ErrorContext(r.Context(), "failed to load persisted form", logger.Error(err))
		writeError(w, err)
		return
	}

	contentType := "application/yaml"
	if json.Valid(data) {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (a *API) getOptions(w http.ResponseWriter, _ *http.Request) {
	options := a.options
	if options == nil {
		options = map[string]any{}
	}
	writeJSON(w, http.StatusOK, options)
}

// respondSettled waits for pending validation, bounded by the request and the
// settle timeout, and writes the resulting view. It never waits for a submit action.
func (a *API) respondSettled(w http.ResponseWriter, r *http.Request, status int) {
	ctx, cancel := context.WithTimeout(r.Context(), a.settleTimeout)
	defer cancel()

	if err := a.ctrl.WaitValidation(ctx); err != nil {
		a.log.WarnContext(r.Context(), "validation did not settle in time", logger.Error(err))
	}
	writeJSON(w, status, a.view())
}
