// Spotify API implementation of [Catalog]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/amdecker/tapedeck/internal/shared"
	"golang.org/x/time/rate"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	// SearchLimit is the page size requested from the search endpoint and
	// therefore the maximum number of candidates a resolution can carry.
	SearchLimit = 10

	defaultTimeout   = 10 * time.Second
	defaultRateLimit = 10 // catalog requests per second
)

// SpotifyImage represents an image resource.
type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// SpotifyArtist represents a credited performer on a track.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Images []SpotifyImage `json:"images"`
}

// SpotifyTrack represents a raw Spotify track search hit.
type SpotifyTrack struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Artists    []SpotifyArtist `json:"artists"`
	Album      SpotifyAlbum    `json:"album"`
	DurationMS int             `json:"duration_ms"`
}

// searchResponse is the envelope of the track search endpoint.
type searchResponse struct {
	Tracks struct {
		Items []SpotifyTrack `json:"items"`
	} `json:"tracks"`
}

// SpotifyService implements the [Catalog] interface for Spotify API interactions.
//
// Outbound calls carry a bearer token from the embedded [TokenManager],
// are bounded by the configured timeout, and pass through a client-side
// rate limiter so bursts of resolutions stay polite toward the API.
type SpotifyService struct {
	baseURL    string
	httpClient *http.Client
	tokens     *TokenManager
	limiter    *rate.Limiter
}

// NewSpotifyService creates a Spotify catalog client from configuration.
//
// Empty catalog URLs fall back to the public Spotify endpoints; a
// non-positive timeout or rate limit falls back to the defaults.
func NewSpotifyService(creds shared.SpotifyConfig, catalog shared.CatalogConfig) *SpotifyService {
	timeout := time.Duration(catalog.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	baseURL := catalog.APIURL
	if baseURL == "" {
		baseURL = spotifyBaseURL
	}

	limit := catalog.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}

	client := &http.Client{Timeout: timeout}

	return &SpotifyService{
		baseURL:    baseURL,
		httpClient: client,
		tokens:     NewTokenManager(creds.ClientID, creds.ClientSecret, catalog.TokenURL, client),
		limiter:    rate.NewLimiter(rate.Limit(limit), 1),
	}
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// Tokens exposes the credential manager, primarily for tests and diagnostics.
func (s *SpotifyService) Tokens() *TokenManager {
	return s.tokens
}

// SearchTracks issues a track search against the catalog.
//
// The query string is sent as-is with a fixed type=track filter and a page
// size of [SearchLimit]. A non-2xx response yields [shared.ErrAPIRequest]
// carrying the upstream status; a timed-out call yields [shared.ErrTimeout].
func (s *SpotifyService) SearchTracks(ctx context.Context, query string) ([]SpotifyTrack, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	searchURL := fmt.Sprintf("%s/search?q=%s&type=track&limit=%d", s.baseURL, url.QueryEscape(query), SearchLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", shared.ErrTimeout, err)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Tracks.Items, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
