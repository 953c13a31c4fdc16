package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avelier/photography-site-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjectStore struct {
	projects []*models.Project
	err      error
	added    []*models.Project
}

func (f *fakeProjectStore) FindAllPublished() ([]*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.projects, nil
}

func (f *fakeProjectStore) FindBySlug(slug string) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.projects {
		if p.ID == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStore) Add(project *models.Project) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, project)
	return nil
}

type fakeProjectDeleter struct {
	deleted []string
	err     error
}

func (f *fakeProjectDeleter) DeleteProjectCascade(slug string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, slug)
	return nil
}

func projectRouter(store *fakeProjectStore, deleter *fakeProjectDeleter) *chi.Mux {
	h := newProjectHandler(store, deleter)
	r := chi.NewRouter()
	r.Get("/api/projects", h.getAllProjects())
	r.Get("/api/projects/{slug}", h.getProject())
	r.Post("/admin/projects", h.createProject())
	r.Delete("/admin/projects/{slug}", h.deleteProject())
	return r
}

func TestGetAllProjects(t *testing.T) {
	store := &fakeProjectStore{projects: []*models.Project{
		{ID: "nature", Title: "Nature", Published: true},
		{ID: "cities", Title: "Cities", Published: true},
	}}

	rec, _ := doRequest(t, projectRouter(store, &fakeProjectDeleter{}), http.MethodGet, "/api/projects")

	require.Equal(t, http.StatusOK, rec.Code)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	assert.Len(t, projects, 2)
}

func TestGetAllProjectsEmptyIsEmptyArray(t *testing.T) {
	store := &fakeProjectStore{}

	rec, _ := doRequest(t, projectRouter(store, &fakeProjectDeleter{}), http.MethodGet, "/api/projects")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetProjectNotFound(t *testing.T) {
	store := &fakeProjectStore{}

	rec, body := doRequest(t, projectRouter(store, &fakeProjectDeleter{}), http.MethodGet, "/api/projects/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", body["error"])
}

func TestGetAllProjectsDatabaseError(t *testing.T) {
	store := &fakeProjectStore{err: &pgconn.PgError{Code: "57P01", Message: "terminating connection"}}

	rec, body := doRequest(t, projectRouter(store, &fakeProjectDeleter{}), http.MethodGet, "/api/projects")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, body["error"])
	assert.Equal(t, "57P01", body["code"])
}

func TestCreateProject(t *testing.T) {
	store := &fakeProjectStore{}
	router := projectRouter(store, &fakeProjectDeleter{})

	req := httptest.NewRequest(http.MethodPost, "/admin/projects",
		strings.NewReader(`{"id": "ice", "title": "Ice", "published": true}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.added, 1)
	assert.Equal(t, "ice", store.added[0].ID)
}

func TestCreateProjectRequiresSlugAndTitle(t *testing.T) {
	store := &fakeProjectStore{}
	router := projectRouter(store, &fakeProjectDeleter{})

	for _, payload := range []string{`{"title": "No Slug"}`, `{"id": "no-title"}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/admin/projects", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload: %s", payload)
	}
	assert.Empty(t, store.added)
}

func TestCreateProjectDuplicateSlugConflicts(t *testing.T) {
	store := &fakeProjectStore{err: &pgconn.PgError{Code: "23505", Message: "duplicate key"}}
	router := projectRouter(store, &fakeProjectDeleter{})

	req := httptest.NewRequest(http.MethodPost, "/admin/projects",
		strings.NewReader(`{"id": "nature", "title": "Nature"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteProject(t *testing.T) {
	store := &fakeProjectStore{projects: []*models.Project{{ID: "nature", Title: "Nature"}}}
	deleter := &fakeProjectDeleter{}

	rec, body := doRequest(t, projectRouter(store, deleter), http.MethodDelete, "/admin/projects/nature")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "deleted", body["status"])
	assert.Equal(t, []string{"nature"}, deleter.deleted)
}

func TestDeleteProjectNotFound(t *testing.T) {
	store := &fakeProjectStore{}
	deleter := &fakeProjectDeleter{}

	rec, body := doRequest(t, projectRouter(store, deleter), http.MethodDelete, "/admin/projects/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", body["error"])
	assert.Empty(t, deleter.deleted)
}

func TestDeleteProjectCascadeFailure(t *testing.T) {
	store := &fakeProjectStore{projects: []*models.Project{{ID: "nature", Title: "Nature"}}}
	deleter := &fakeProjectDeleter{err: errors.New("tx failed")}

	rec, _ := doRequest(t, projectRouter(store, deleter), http.MethodDelete, "/admin/projects/nature")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUnexpectedErrorIsOpaque(t *testing.T) {
	h := newProjectHandler(&fakeProjectStore{}, &fakeProjectDeleter{})
	rec := httptest.NewRecorder()

	h.responder.WriteError(rec, errors.New("pg password leaked in message"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}
