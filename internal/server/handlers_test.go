package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amdecker/tapedeck/internal/models"
	"github.com/amdecker/tapedeck/internal/shared"
)

// mockResolver is a TrackResolver double that returns a canned resolution.
type mockResolver struct {
	res   models.Resolution
	calls int
	last  models.TrackQuery
}

func (m *mockResolver) Resolve(ctx context.Context, query models.TrackQuery) models.Resolution {
	m.calls++
	m.last = query
	return m.res
}

type panicResolver struct{}

func (panicResolver) Resolve(context.Context, models.TrackQuery) models.Resolution {
	panic("resolver exploded")
}

func newTestServer(tracks TrackResolver) http.Handler {
	return NewServer("127.0.0.1:0", tracks, shared.NewLogger(io.Discard)).Router()
}

func searchRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/search-track", strings.NewReader(body))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var data map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rec.Body.String(), err)
	}
	return data
}

func TestHealthHandler(t *testing.T) {
	router := newTestServer(&mockResolver{})

	t.Run("reports ok", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
		if data := decodeBody(t, rec); data["status"] != "ok" {
			t.Errorf("unexpected body: %v", data)
		}
	})

	t.Run("rejects non-GET", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})
}

func TestSearchTrackHandler(t *testing.T) {
	t.Run("rejects non-POST", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestServer(&mockResolver{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search-track", nil))

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})

	t.Run("missing song name is a 400 before any resolution", func(t *testing.T) {
		resolver := &mockResolver{}
		rec := httptest.NewRecorder()
		newTestServer(resolver).ServeHTTP(rec, searchRequest(`{"artist":"Radiohead"}`))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if data := decodeBody(t, rec); data["error"] != msgSongNameRequired {
			t.Errorf("unexpected error message: %v", data["error"])
		}
		if resolver.calls != 0 {
			t.Errorf("expected no resolution, got %d", resolver.calls)
		}
	})

	t.Run("malformed body is a generic 500", func(t *testing.T) {
		resolver := &mockResolver{}
		rec := httptest.NewRecorder()
		newTestServer(resolver).ServeHTTP(rec, searchRequest(`{"songName":`))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rec.Code)
		}
		if data := decodeBody(t, rec); data["error"] != msgSearchFailed {
			t.Errorf("unexpected error message: %v", data["error"])
		}
		if resolver.calls != 0 {
			t.Errorf("expected no resolution, got %d", resolver.calls)
		}
	})

	t.Run("single match is returned flattened", func(t *testing.T) {
		art := "https://img/abbey-road.jpg"
		resolver := &mockResolver{res: models.Single(models.Track{
			SongName:  "Come Together",
			Artist:    "The Beatles",
			Duration:  260,
			AlbumArt:  &art,
			AlbumName: "Abbey Road",
			SpotifyID: "2EqlS6tkEnglzr7tkKAAYD",
		})}

		rec := httptest.NewRecorder()
		newTestServer(resolver).ServeHTTP(rec, searchRequest(`{"songName":"Come Together","artist":"The Beatles"}`))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		data := decodeBody(t, rec)
		if data["songName"] != "Come Together" || data["spotifyId"] != "2EqlS6tkEnglzr7tkKAAYD" {
			t.Errorf("unexpected track: %v", data)
		}
		if data["duration"] != float64(260) {
			t.Errorf("unexpected duration: %v", data["duration"])
		}
		if _, present := data["results"]; present {
			t.Error("single match must not carry a results key")
		}
		if _, present := data["multiple"]; present {
			t.Error("single match must not carry a multiple key")
		}

		if resolver.last.SongName != "Come Together" || resolver.last.Artist != "The Beatles" {
			t.Errorf("unexpected query passed through: %+v", resolver.last)
		}
	})

	t.Run("single match serializes missing album art as null", func(t *testing.T) {
		resolver := &mockResolver{res: models.Single(models.Track{SongName: "x", SpotifyID: "t1"})}

		rec := httptest.NewRecorder()
		newTestServer(resolver).ServeHTTP(rec, searchRequest(`{"songName":"x"}`))

		data := decodeBody(t, rec)
		value, present := data["albumArt"]
		if !present {
			t.Fatal("expected an albumArt key")
		}
		if value != nil {
			t.Errorf("expected null album art, got %v", value)
		}
	})

	t.Run("multiple matches are wrapped and ordered", func(t *testing.T) {
		resolver := &mockResolver{res: models.Multiple([]models.Track{
			{SongName: "Hurt", Artist: "Nine Inch Nails", SpotifyID: "t1"},
			{SongName: "Hurt", Artist: "Johnny Cash", SpotifyID: "t2"},
			{SongName: "Hurt (Live)", Artist: "Johnny Cash", SpotifyID: "t3"},
		})}

		rec := httptest.NewRecorder()
		newTestServer(resolver).ServeHTTP(rec, searchRequest(`{"songName":"Hurt"}`))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var body models.MultipleResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !body.Multiple {
			t.Error("expected multiple=true")
		}
		if len(body.Results) != 3 {
			t.Fatalf("expected three results, got %d", len(body.Results))
		}
		for i, id := range []string{"t1", "t2", "t3"} {
			if body.Results[i].SpotifyID != id {
				t.Errorf("result %d: expected %s, got %s", i, id, body.Results[i].SpotifyID)
			}
		}
	})

	t.Run("no match is an error-shaped 500", func(t *testing.T) {
		resolver := &mockResolver{res: models.NotFound()}

		rec := httptest.NewRecorder()
		newTestServer(resolver).ServeHTTP(rec, searchRequest(`{"songName":"zzzzz"}`))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rec.Code)
		}
		if data := decodeBody(t, rec); data["error"] != msgNotFound {
			t.Errorf("unexpected error message: %v", data["error"])
		}
	})

	t.Run("failure messages", func(t *testing.T) {
		tests := []struct {
			name     string
			err      error
			expected string
		}{
			{"missing credentials", shared.ErrMissingCredentials, msgCredentialsMissing},
			{"auth failure", shared.ErrAuthFailed, msgCredentialsMissing},
			{"upstream rejection", shared.ErrAPIRequest, msgUpstreamSearch},
			{"timeout", shared.ErrTimeout, msgSearchFailed},
			{"anything else", io.ErrUnexpectedEOF, msgSearchFailed},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resolver := &mockResolver{res: models.Failed(tt.err)}

				rec := httptest.NewRecorder()
				newTestServer(resolver).ServeHTTP(rec, searchRequest(`{"songName":"x"}`))

				if rec.Code != http.StatusInternalServerError {
					t.Errorf("expected 500, got %d", rec.Code)
				}
				if data := decodeBody(t, rec); data["error"] != tt.expected {
					t.Errorf("expected %q, got %v", tt.expected, data["error"])
				}
			})
		}
	})
}

func TestMiddleware(t *testing.T) {
	router := newTestServer(&mockResolver{res: models.NotFound()})

	t.Run("CORS headers on every response", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		headers := rec.Header()
		if headers.Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("unexpected allow-origin: %s", headers.Get("Access-Control-Allow-Origin"))
		}
		if headers.Get("Access-Control-Allow-Methods") != "GET, POST, PUT, DELETE, OPTIONS" {
			t.Errorf("unexpected allow-methods: %s", headers.Get("Access-Control-Allow-Methods"))
		}
		if headers.Get("Access-Control-Allow-Headers") != "Content-Type, Authorization" {
			t.Errorf("unexpected allow-headers: %s", headers.Get("Access-Control-Allow-Headers"))
		}
		if headers.Get("Access-Control-Expose-Headers") != "Content-Length" {
			t.Errorf("unexpected expose-headers: %s", headers.Get("Access-Control-Expose-Headers"))
		}
		if headers.Get("Access-Control-Max-Age") != "600" {
			t.Errorf("unexpected max-age: %s", headers.Get("Access-Control-Max-Age"))
		}
	})

	t.Run("preflight is answered with 204", func(t *testing.T) {
		resolver := &mockResolver{}
		rec := httptest.NewRecorder()
		newTestServer(resolver).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/search-track", nil))

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", rec.Code)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("expected CORS headers on preflight")
		}
		if resolver.calls != 0 {
			t.Errorf("expected preflight to stop at the middleware, got %d calls", resolver.calls)
		}
	})

	t.Run("panics become the generic search failure", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestServer(panicResolver{}).ServeHTTP(rec, searchRequest(`{"songName":"x"}`))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rec.Code)
		}
		if data := decodeBody(t, rec); data["error"] != msgSearchFailed {
			t.Errorf("unexpected error message: %v", data["error"])
		}
	})

	t.Run("unknown paths fall through to the mux", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}
