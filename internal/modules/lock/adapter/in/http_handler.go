package in

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"focuslock/internal/modules/lock/dto"
	lockin "focuslock/internal/modules/lock/port/in"
	apperrors "focuslock/internal/platform/errors"
)

// HTTPHandler lets a browser content script drive one lock controller per tab.
type HTTPHandler struct {
	usecase lockin.Usecase
}

func NewHTTPHandler(usecase lockin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/pages/{id}", h.state).Methods(http.MethodGet)
	r.HandleFunc("/api/pages/{id}", h.close).Methods(http.MethodDelete)
	r.HandleFunc("/api/pages/{id}/evaluate", h.evaluate).Methods(http.MethodPost)
	r.HandleFunc("/api/pages/{id}/submit", h.submit).Methods(http.MethodPost)
}

func (h HTTPHandler) evaluate(w http.ResponseWriter, r *http.Request) {
	var input dto.EvaluateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	input.PageID = mux.Vars(r)["id"]
	out, err := h.usecase.Evaluate(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h HTTPHandler) submit(w http.ResponseWriter, r *http.Request) {
	var input dto.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	input.PageID = mux.Vars(r)["id"]
	out, err := h.usecase.Submit(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h HTTPHandler) state(w http.ResponseWriter, r *http.Request) {
	out, err := h.usecase.State(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h HTTPHandler) close(w http.ResponseWriter, r *http.Request) {
	if err := h.usecase.Close(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrPageNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrNoActiveSession):
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
