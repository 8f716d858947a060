package slides

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/flanksource/commons/logger"
)

const (
	searchEndpoint = "https://api.unsplash.com/search/photos"
	searchPageSize = 12
)

// ImageSearcher queries a stock-photo API for slide images. A failed or
// unconfigured search degrades to deterministic placeholder images so the
// editing flow keeps working offline.
type ImageSearcher struct {
	// AccessKey is the API client id; "demo" when empty.
	AccessKey string
	// Endpoint overrides the search URL, used by tests.
	Endpoint string
	Client   *http.Client
}

type searchResponse struct {
	Results []struct {
		ID          string `json:"id"`
		Description string `json:"description"`
		AltDesc     string `json:"alt_description"`
		URLs        struct {
			Regular string `json:"regular"`
			Small   string `json:"small"`
		} `json:"urls"`
	} `json:"results"`
}

// Search returns up to 12 images for the query. On any transport or API
// failure it returns placeholder results instead of an error.
func (s *ImageSearcher) Search(ctx context.Context, query string) ([]Image, error) {
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}

	images, err := s.search(ctx, query)
	if err != nil {
		logger.Errorf("image search failed, using placeholders: %v", err)
		return PlaceholderImages(query), nil
	}
	return images, nil
}

func (s *ImageSearcher) search(ctx context.Context, query string) ([]Image, error) {
	endpoint := s.Endpoint
	if endpoint == "" {
		endpoint = searchEndpoint
	}
	key := s.AccessKey
	if key == "" {
		key = "demo"
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", fmt.Sprint(searchPageSize))
	params.Set("client_id", key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned %s", resp.Status)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return nil, fmt.Errorf("no images found")
	}

	images := make([]Image, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		alt := r.AltDesc
		if alt == "" {
			alt = r.Description
		}
		if alt == "" {
			alt = "Image"
		}
		images = append(images, Image{
			ID:    r.ID,
			URL:   r.URLs.Regular,
			Thumb: r.URLs.Small,
			Alt:   alt,
		})
	}
	return images, nil
}

// PlaceholderImages returns the 12 deterministic fallback entries for a
// query.
func PlaceholderImages(query string) []Image {
	images := make([]Image, 0, searchPageSize)
	for i := 1; i <= searchPageSize; i++ {
		images = append(images, Image{
			ID:    fmt.Sprintf("demo-%d", i),
			URL:   fmt.Sprintf("https://picsum.photos/800/600?random=%d&q=%s", i, url.QueryEscape(query)),
			Thumb: fmt.Sprintf("https://picsum.photos/200/150?random=%d&q=%s", i, url.QueryEscape(query)),
			Alt:   fmt.Sprintf("%s image %d", query, i),
		})
	}
	return images
}

// ResolveImages downloads attached image bytes for export. Individual
// download failures leave that image without data; the export skips it.
func (d *Deck) ResolveImages(ctx context.Context, client *http.Client) {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	for _, slide := range d.Slides {
		for i := range slide.Images {
			img := &slide.Images[i]
			if img.Data != nil || img.URL == "" {
				continue
			}
			data, err := fetchImage(ctx, client, img.URL)
			if err != nil {
				logger.Errorf("failed to fetch slide image %s: %v", img.ID, err)
				continue
			}
			img.Data = data
		}
	}
}

func fetchImage(ctx context.Context, client *http.Client, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch returned %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 20<<20))
}

func (s *ImageSearcher) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{Timeout: 15 * time.Second}
}
