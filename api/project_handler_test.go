package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/models"
)

func newProjectRouter(store *fakeProjectStore) *chi.Mux {
	h := newProjectHandler(store)
	r := chi.NewRouter()
	r.Get("/projects", h.listProjects())
	r.Get("/projects/{idOrSlug}", h.getProject())
	r.Post("/projects", h.createProject())
	r.Put("/projects/{projectID}", h.updateProject())
	r.Delete("/projects/{projectID}", h.deleteProject())
	return r
}

func TestCreateProjectDerivesSlugFromTitle(t *testing.T) {
	store := newFakeProjectStore()
	router := newProjectRouter(store)

	body := `{"title":"Hello, World!","description":"demo"}`
	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "hello-world", created.Slug)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateProjectRequiresTitle(t *testing.T) {
	store := newFakeProjectStore()
	router := newProjectRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString(`{"description":"no title"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.projects)
}

func TestCreateProjectRequiresDescription(t *testing.T) {
	store := newFakeProjectStore()
	router := newProjectRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString(`{"title":"No Description"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.projects)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "description", body.Field)
}

func TestGetProjectBySlugAndByKeyReturnSameDocument(t *testing.T) {
	store := newFakeProjectStore()
	router := newProjectRouter(store)

	project := &models.Project{Slug: "my-site", Title: "My Site", CreatedAt: time.Now()}
	require.NoError(t, store.Add(context.Background(), project))

	bySlug := httptest.NewRecorder()
	router.ServeHTTP(bySlug, httptest.NewRequest(http.MethodGet, "/projects/my-site", nil))
	require.Equal(t, http.StatusOK, bySlug.Code)

	byKey := httptest.NewRecorder()
	router.ServeHTTP(byKey, httptest.NewRequest(http.MethodGet, "/projects/"+project.ID.String(), nil))
	require.Equal(t, http.StatusOK, byKey.Code)

	assert.JSONEq(t, bySlug.Body.String(), byKey.Body.String())
}

func TestGetProjectNotFound(t *testing.T) {
	router := newProjectRouter(newFakeProjectStore())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProjectsFeaturedFilter(t *testing.T) {
	store := newFakeProjectStore()
	router := newProjectRouter(store)

	require.NoError(t, store.Add(context.Background(), &models.Project{Slug: "a", Title: "A", Featured: true, CreatedAt: time.Now()}))
	require.NoError(t, store.Add(context.Background(), &models.Project{Slug: "b", Title: "B", Featured: false, CreatedAt: time.Now()}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects?featured=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.True(t, projects[0].Featured)
}

func TestUpdateProjectRegeneratesSlugOnNewTitle(t *testing.T) {
	store := newFakeProjectStore()
	router := newProjectRouter(store)

	project := &models.Project{Slug: "old-name", Title: "Old Name", CreatedAt: time.Now()}
	require.NoError(t, store.Add(context.Background(), project))

	body := `{"title":"New Name","featured":true}`
	req := httptest.NewRequest(http.MethodPut, "/projects/"+project.ID.String(), bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "new-name", updated.Slug)
	assert.Equal(t, "New Name", updated.Title)
	assert.True(t, updated.Featured)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestUpdateProjectKeepsExplicitSlug(t *testing.T) {
	store := newFakeProjectStore()
	router := newProjectRouter(store)

	project := &models.Project{Slug: "custom", Title: "Custom", CreatedAt: time.Now()}
	require.NoError(t, store.Add(context.Background(), project))

	body := `{"title":"Renamed","id":"still-custom"}`
	req := httptest.NewRequest(http.MethodPut, "/projects/"+project.ID.String(), bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "still-custom", updated.Slug)
}

func TestUpdateProjectNotFound(t *testing.T) {
	router := newProjectRouter(newFakeProjectStore())

	req := httptest.NewRequest(http.MethodPut, "/projects/"+uuid.NewString(), bytes.NewBufferString(`{"title":"X"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProject(t *testing.T) {
	store := newFakeProjectStore()
	router := newProjectRouter(store)

	project := &models.Project{Slug: "gone", Title: "Gone", CreatedAt: time.Now()}
	require.NoError(t, store.Add(context.Background(), project))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/projects/"+project.ID.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	again := httptest.NewRecorder()
	router.ServeHTTP(again, httptest.NewRequest(http.MethodDelete, "/projects/"+project.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, again.Code)
}
