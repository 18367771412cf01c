// package testing contains shared testing utilities
package testing

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/amdecker/tapedeck/internal/services"
)

// MockCatalog is a test double for [services.Catalog] that records calls.
type MockCatalog struct {
	Hits      []services.SpotifyTrack
	Err       error
	Calls     int
	LastQuery string
}

func (m *MockCatalog) SearchTracks(ctx context.Context, query string) ([]services.SpotifyTrack, error) {
	m.Calls++
	m.LastQuery = query
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Hits, nil
}

func (m *MockCatalog) Name() string { return "mock" }

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
