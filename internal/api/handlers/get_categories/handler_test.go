package get_categories

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/pkg/logger"
)

type fakeService struct {
	categories []domain.VisitCategory
	err        error
}

func (s *fakeService) List(ctx context.Context) ([]domain.VisitCategory, error) {
	return s.categories, s.err
}

func TestHandle_Success(t *testing.T) {
	h := NewHandler(&fakeService{categories: []domain.VisitCategory{
		{ID: 1, Name: "대심방"},
		{ID: 2, Name: "일반심방"},
	}}, logger.NewNop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"대심방"},{"id":2,"name":"일반심방"}]`, w.Body.String())
}

func TestHandle_Empty(t *testing.T) {
	h := NewHandler(&fakeService{}, logger.NewNop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandle_Error(t *testing.T) {
	h := NewHandler(&fakeService{err: errors.New("db down")}, logger.NewNop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
