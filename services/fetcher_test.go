package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/avelier/photography-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *SiteClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewSiteClient(map[string]string{"PUBLIC_API_BASE_URL": server.URL})
	require.NoError(t, err)
	return client
}

func TestNewSiteClientRequiresBaseURL(t *testing.T) {
	_, err := NewSiteClient(map[string]string{})
	require.Error(t, err)
}

func TestGetProjects(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "nature", "title": "Nature", "published": true}]`))
	}))

	projects, err := client.GetProjects(context.Background())

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "nature", projects[0].ID)
}

func TestGetPhotosNonSuccessStatusIsDescriptiveError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "No photos found for this project"}`))
	}))

	_, err := client.GetPhotos(context.Background(), "empty-project")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "No photos found for this project")
}

func TestGetPhoto(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/photos/nature/2", r.URL.Path)
		w.Write([]byte(`{"seq": 2, "projectId": "nature", "blobUrl": "/bg.jpg"}`))
	}))

	photo, err := client.GetPhoto(context.Background(), "nature", 2)

	require.NoError(t, err)
	assert.Equal(t, models.BackgroundSeq, photo.Seq)
	assert.Equal(t, "/bg.jpg", photo.BlobURL)
}

func TestPrefetchBackgroundsToleratesPartialFailure(t *testing.T) {
	var requests atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path == "/api/photos/broken/2" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "database query failed"}`))
			return
		}
		w.Write([]byte(`{"seq": 2, "blobUrl": "/images` + r.URL.Path + `"}`))
	}))

	backgrounds := client.PrefetchBackgrounds(context.Background(), []string{"nature", "broken", "cities"})

	// every slug was fetched even though one failed
	assert.Equal(t, int32(3), requests.Load())
	require.Len(t, backgrounds, 3)
	assert.NotNil(t, backgrounds["nature"])
	assert.NotNil(t, backgrounds["cities"])
	assert.Nil(t, backgrounds["broken"])
}

func TestGetFeaturedPhotosDecodesEmptyList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/photos/featured", r.URL.Path)
		w.Write([]byte(`[]`))
	}))

	photos, err := client.GetFeaturedPhotos(context.Background())

	require.NoError(t, err)
	assert.Empty(t, photos)
}
