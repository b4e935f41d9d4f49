package in

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"focuslock/internal/modules/settings/dto"
	settingsin "focuslock/internal/modules/settings/port/in"
	apperrors "focuslock/internal/platform/errors"
)

// HTTPHandler exposes the settings surface to the browser extension.
type HTTPHandler struct {
	usecase settingsin.Usecase
}

func NewHTTPHandler(usecase settingsin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/settings", h.get).Methods(http.MethodGet)
	r.HandleFunc("/api/settings", h.save).Methods(http.MethodPut)
	r.HandleFunc("/api/settings/reset", h.reset).Methods(http.MethodPost)
}

func (h HTTPHandler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.usecase.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h HTTPHandler) save(w http.ResponseWriter, r *http.Request) {
	var input dto.SaveInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	out, err := h.usecase.Save(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h HTTPHandler) reset(w http.ResponseWriter, r *http.Request) {
	out, err := h.usecase.RestoreDefaults(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrInvalidDuration),
		errors.Is(err, apperrors.ErrEmptyKeyword),
		errors.Is(err, apperrors.ErrDuplicateKeyword),
		errors.Is(err, apperrors.ErrNoKeywords):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
