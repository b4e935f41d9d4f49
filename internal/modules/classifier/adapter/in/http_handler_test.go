package in

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focuslock/internal/modules/classifier/dto"
	"focuslock/internal/platform/keywords"
)

type fakeUsecase struct {
	input dto.ClassifyInput
}

func (f *fakeUsecase) Classify(_ context.Context, input dto.ClassifyInput) (dto.ClassifyOutput, error) {
	f.input = input
	return dto.ClassifyOutput{StudyRelated: true, Matches: []string{"math"}, KeywordCount: 1}, nil
}

func (f *fakeUsecase) Snapshot(context.Context, dto.SnapshotInput) (dto.SnapshotOutput, error) {
	return dto.SnapshotOutput{}, nil
}

func (f *fakeUsecase) Inspect(context.Context, dto.SnapshotInput) (dto.ClassifyOutput, error) {
	return dto.ClassifyOutput{}, nil
}

func TestClassifyRoute(t *testing.T) {
	uc := &fakeUsecase{}
	r := mux.NewRouter()
	NewHTTPHandler(uc).Register(r)

	body := `{"title":"Khan Academy","bodyText":"Algebra","url":"https://khanacademy.org","studyKeywords":["math"]}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"studyRelated":true`)
	assert.Equal(t, "Khan Academy", uc.input.Title)
	require.NotNil(t, uc.input.Keywords)
	assert.Equal(t, keywords.ShapeFlat, uc.input.Keywords.Shape())
}

func TestClassifyRouteWithoutKeywordsLeavesThemUnset(t *testing.T) {
	uc := &fakeUsecase{}
	r := mux.NewRouter()
	NewHTTPHandler(uc).Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(`{"title":"x"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.input.Keywords)
}

func TestClassifyRouteRejectsMalformedBody(t *testing.T) {
	r := mux.NewRouter()
	NewHTTPHandler(&fakeUsecase{}).Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(`{`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
