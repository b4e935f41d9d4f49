package in

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"focuslock/internal/modules/classifier/dto"
	classifierin "focuslock/internal/modules/classifier/port/in"
	apperrors "focuslock/internal/platform/errors"
)

type HTTPHandler struct {
	usecase classifierin.Usecase
}

func NewHTTPHandler(usecase classifierin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/classify", h.classify).Methods(http.MethodPost)
}

func (h HTTPHandler) classify(w http.ResponseWriter, r *http.Request) {
	var input dto.ClassifyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	out, err := h.usecase.Classify(r.Context(), input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperrors.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
