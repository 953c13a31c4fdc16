package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avelier/photography-site-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type fakePageStore struct {
	pages    map[string]*models.Page
	upserted []*models.Page
	err      error
}

func (f *fakePageStore) FindBySlug(slug string) (*models.Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pages[slug], nil
}

func (f *fakePageStore) Upsert(page *models.Page) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, page)
	return nil
}

func pageRouter(pages *fakePageStore, photos *fakePhotoStore) *chi.Mux {
	h := newPageHandler(pages, photos)
	r := chi.NewRouter()
	r.Get("/api/pages/{slug}", h.getPage())
	r.Post("/admin/pages", h.upsertPage())
	return r
}

func TestGetPageRendersBlocks(t *testing.T) {
	blocks := `[
		{"blockType": "hero", "image": "/hero.jpg", "heading": "About"},
		{"blockType": "gallery", "source": "project", "projectId": "nature"},
		{"blockType": "spacer", "size": "medium"}
	]`
	pages := &fakePageStore{pages: map[string]*models.Page{
		"about": {Slug: "about", Title: "About", Blocks: datatypes.JSON(blocks)},
	}}
	photos := &fakePhotoStore{byProject: map[string][]*models.Photo{
		"nature": {{Seq: 1, ProjectID: "nature", GalleryURL: "/g1.jpg"}},
	}}

	rec, _ := doRequest(t, pageRouter(pages, photos), http.MethodGet, "/api/pages/about")

	require.Equal(t, http.StatusOK, rec.Code)

	var page RenderedPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, "about", page.Slug)
	require.Len(t, page.Blocks, 3)
	assert.Equal(t, models.BlockKindHero, page.Blocks[0].BlockType)
	require.Len(t, page.Blocks[1].Photos, 1)
	assert.Equal(t, "/g1.jpg", page.Blocks[1].Photos[0].GalleryURL)
}

func TestGetPageNotFound(t *testing.T) {
	rec, body := doRequest(t, pageRouter(&fakePageStore{}, &fakePhotoStore{}), http.MethodGet, "/api/pages/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Page not found", body["error"])
}

func TestGetPageSkipsFailingGalleryBlock(t *testing.T) {
	blocks := `[
		{"blockType": "gallery", "source": "project", "projectId": "nature"},
		{"blockType": "text", "content": "still here"}
	]`
	pages := &fakePageStore{pages: map[string]*models.Page{
		"about": {Slug: "about", Blocks: datatypes.JSON(blocks)},
	}}
	photos := &fakePhotoStore{err: assert.AnError}

	rec, _ := doRequest(t, pageRouter(pages, photos), http.MethodGet, "/api/pages/about")

	require.Equal(t, http.StatusOK, rec.Code)

	var page RenderedPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Blocks, 1)
	assert.Equal(t, models.BlockKindText, page.Blocks[0].BlockType)
}

func TestUpsertPageRejectsUnknownBlockType(t *testing.T) {
	pages := &fakePageStore{}
	router := pageRouter(pages, &fakePhotoStore{})

	req := httptest.NewRequest(http.MethodPost, "/admin/pages",
		strings.NewReader(`{"slug": "about", "title": "About", "blocks": [{"blockType": "carousel"}]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, pages.upserted)
}

func TestUpsertPageStoresBlocks(t *testing.T) {
	pages := &fakePageStore{}
	router := pageRouter(pages, &fakePhotoStore{})

	req := httptest.NewRequest(http.MethodPost, "/admin/pages",
		strings.NewReader(`{"slug": "about", "title": "About", "blocks": [{"blockType": "text", "content": "hi"}]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, pages.upserted, 1)
	assert.Equal(t, "about", pages.upserted[0].Slug)
}
