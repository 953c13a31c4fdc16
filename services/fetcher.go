package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/avelier/photography-site-backend/config"
	"github.com/avelier/photography-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// prefetchConcurrency bounds the parallel background-photo fetches a single
// page render may issue.
const prefetchConcurrency = 4

// SiteClient is the data-fetch layer page-rendering code calls to obtain
// projects and photos over the public API. It is not used by browsers.
type SiteClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewSiteClient builds a client against the configured public API base URL
// (PUBLIC_API_BASE_URL). A missing base URL is a configuration error.
func NewSiteClient(cfg map[string]string) (*SiteClient, error) {
	baseURL := config.GetString(cfg, "PUBLIC_API_BASE_URL", "")
	if baseURL == "" {
		return nil, fmt.Errorf("PUBLIC_API_BASE_URL environment variable is required")
	}

	return &SiteClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     log.With().Str("service", "siteClient").Logger(),
	}, nil
}

// GetProjects returns all published projects.
func (c *SiteClient) GetProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.get(ctx, "/api/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns a single project by slug.
func (c *SiteClient) GetProject(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	if err := c.get(ctx, "/api/projects/"+slug, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetPhotos returns a project's photos in sequence order.
func (c *SiteClient) GetPhotos(ctx context.Context, slug string) ([]models.Photo, error) {
	var photos []models.Photo
	if err := c.get(ctx, "/api/photos/"+slug, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// GetPhoto returns one photo by project slug and sequence.
func (c *SiteClient) GetPhoto(ctx context.Context, slug string, seq int) (*models.Photo, error) {
	var photo models.Photo
	if err := c.get(ctx, "/api/photos/"+slug+"/"+strconv.Itoa(seq), &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

// GetFeaturedPhotos returns the most recent sequence-1 photos.
func (c *SiteClient) GetFeaturedPhotos(ctx context.Context) ([]models.Photo, error) {
	var photos []models.Photo
	if err := c.get(ctx, "/api/photos/featured", &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// PrefetchBackgrounds fetches the representative background photo (seq 2)
// for several projects concurrently. Every fetch runs to completion; a
// failed slug yields a nil entry and a log line, never an aborted batch.
func (c *SiteClient) PrefetchBackgrounds(ctx context.Context, slugs []string) map[string]*models.Photo {
	backgrounds := make([]*models.Photo, len(slugs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchConcurrency)
	for i, slug := range slugs {
		g.Go(func() error {
			photo, err := c.GetPhoto(ctx, slug, models.BackgroundSeq)
			if err != nil {
				c.logger.Warn().Err(err).Str("project", slug).Msg("Background prefetch failed")
				return nil // individual failures must not abort the batch
			}
			backgrounds[i] = photo
			return nil
		})
	}
	g.Wait()

	result := make(map[string]*models.Photo, len(slugs))
	for i, slug := range slugs {
		result[slug] = backgrounds[i]
	}
	return result
}

func (c *SiteClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response for %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned status %d: %s", path, resp.StatusCode, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response for %s: %w", path, err)
	}
	return nil
}
