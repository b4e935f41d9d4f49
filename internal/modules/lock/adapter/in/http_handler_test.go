package in

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focuslock/internal/modules/lock/dto"
	apperrors "focuslock/internal/platform/errors"
)

type fakeUsecase struct {
	evaluated dto.EvaluateInput
	submitted dto.SubmitInput
	closed    []string
	known     map[string]bool
}

func (f *fakeUsecase) Evaluate(_ context.Context, input dto.EvaluateInput) (dto.EvaluateOutput, error) {
	f.evaluated = input
	return dto.EvaluateOutput{Enabled: true, Matches: []string{}, Page: dto.PageStateOutput{PageID: input.PageID, State: "locked", RemainingSeconds: 300}}, nil
}

func (f *fakeUsecase) Submit(_ context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	f.submitted = input
	if !f.known[input.PageID] {
		return dto.SubmitOutput{}, fmt.Errorf("%w: %s", apperrors.ErrPageNotFound, input.PageID)
	}
	if input.Text == "" {
		return dto.SubmitOutput{}, apperrors.ErrNoActiveSession
	}
	return dto.SubmitOutput{Accepted: true, Page: dto.PageStateOutput{PageID: input.PageID, State: "unlocked"}}, nil
}

func (f *fakeUsecase) State(_ context.Context, pageID string) (dto.PageStateOutput, error) {
	if !f.known[pageID] {
		return dto.PageStateOutput{}, fmt.Errorf("%w: %s", apperrors.ErrPageNotFound, pageID)
	}
	return dto.PageStateOutput{PageID: pageID, State: "locked", Overlay: dto.OverlayOutput{Visible: true, Countdown: "4:59"}}, nil
}

func (f *fakeUsecase) Close(_ context.Context, pageID string) error {
	f.closed = append(f.closed, pageID)
	return nil
}

func (f *fakeUsecase) SettingsChanged(context.Context) error { return nil }

func serve(uc *fakeUsecase, method, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	NewHTTPHandler(uc).Register(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestEvaluateRouteUsesPathID(t *testing.T) {
	uc := &fakeUsecase{}
	rec := serve(uc, http.MethodPost, "/api/pages/tab-7/evaluate", `{"title":"Memes","bodyText":"lol","url":"https://x.test"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tab-7", uc.evaluated.PageID)
	assert.Equal(t, "Memes", uc.evaluated.Title)
	assert.Contains(t, rec.Body.String(), `"remainingSeconds":300`)
	assert.Contains(t, rec.Body.String(), `"matches":[]`)
}

func TestSubmitRoute(t *testing.T) {
	uc := &fakeUsecase{known: map[string]bool{"tab-1": true}}
	rec := serve(uc, http.MethodPost, "/api/pages/tab-1/submit", `{"text":"I am committed to my education."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "I am committed to my education.", uc.submitted.Text)
	assert.Contains(t, rec.Body.String(), `"accepted":true`)
}

func TestSubmitRouteErrors(t *testing.T) {
	uc := &fakeUsecase{known: map[string]bool{"tab-1": true}}

	rec := serve(uc, http.MethodPost, "/api/pages/missing/submit", `{"text":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(uc, http.MethodPost, "/api/pages/tab-1/submit", `{"text":""}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(uc, http.MethodPost, "/api/pages/tab-1/submit", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStateAndCloseRoutes(t *testing.T) {
	uc := &fakeUsecase{known: map[string]bool{"tab-1": true}}

	rec := serve(uc, http.MethodGet, "/api/pages/tab-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"countdown":"4:59"`)

	rec = serve(uc, http.MethodDelete, "/api/pages/tab-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"tab-1"}, uc.closed)
}
