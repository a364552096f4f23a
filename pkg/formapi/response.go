package formapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/dmitrymomot/formstate/pkg/form"
)

// View is the snapshot returned by every event route.
type View struct {
	form.State
	IsValid bool              `json:"isValid"`
	Status  map[string]string `json:"status"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (a *API) view() View {
	state := a.ctrl.Snapshot()
	status := make(map[string]string)
	for _, field := range fieldNames(state) {
		status[field] = a.status(state.Touched[field], state.Errors, field)
	}
	return View{
		State:   state,
		IsValid: len(state.Errors) > 0,
		Status:  status,
	}
}

func fieldNames(s form.State) []string {
	seen := make(map[string]struct{}, len(s.Values))
	for k := range s.Values {
		seen[k] = struct{}{}
	}
	for k := range s.Touched {
		seen[k] = struct{}{}
	}
	for k := range s.Errors {
		seen[k] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrUnsupportedMediaType):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, ErrInvalidJSON), errors.Is(err, ErrMissingField):
		status = http.StatusBadRequest
	case errors.Is(err, ErrPersistenceDisabled), errors.Is(err, ErrNotPersisted):
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}
