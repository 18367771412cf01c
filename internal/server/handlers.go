package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amdecker/tapedeck/internal/models"
	"github.com/amdecker/tapedeck/internal/shared"
	"github.com/charmbracelet/log"
)

// User-visible messages are fixed strings the mixtape UI matches on; keep
// them byte-for-byte stable.
const (
	msgSongNameRequired   = "Song name is required"
	msgNotFound           = "Track not found on Spotify. Try different search terms or add manually."
	msgCredentialsMissing = "Spotify API credentials not configured. Please set SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET environment variables."
	msgUpstreamSearch     = "Failed to search Spotify. Please try again."
	msgSearchFailed       = "Failed to search for track"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// HealthHandler serves the unauthenticated health check.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Routes returns the HTTP routes this handler serves.
func (h *HealthHandler) Routes() []string {
	return []string{"/health"}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// SearchTrackHandler serves POST /search-track: it validates the request
// body, runs one resolution, and translates the outcome into the wire
// contract. This is the only layer that maps errors to status codes.
type SearchTrackHandler struct {
	tracks TrackResolver
	logger *log.Logger
}

func NewSearchTrackHandler(tracks TrackResolver, logger *log.Logger) *SearchTrackHandler {
	return &SearchTrackHandler{tracks: tracks, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *SearchTrackHandler) Routes() []string {
	return []string{"/search-track"}
}

func (h *SearchTrackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var query models.TrackQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		h.logger.Error("failed to decode search request", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: msgSearchFailed})
		return
	}

	if query.SongName == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msgSongNameRequired})
		return
	}

	res := h.tracks.Resolve(r.Context(), query)

	switch res.State {
	case models.ResolvedSingle:
		writeJSON(w, http.StatusOK, res.Track)
	case models.ResolvedMultiple:
		writeJSON(w, http.StatusOK, models.MultipleResponse{Results: res.Candidates, Multiple: true})
	case models.ResolutionNotFound:
		// The UI expects the no-match case as an error-shaped 500, not a
		// 404; preserved for wire compatibility.
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: msgNotFound})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: errorMessage(res.Err)})
	}
}

// errorMessage maps a classified resolver error to its fixed user-facing string.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, shared.ErrMissingCredentials), errors.Is(err, shared.ErrAuthFailed):
		return msgCredentialsMissing
	case errors.Is(err, shared.ErrAPIRequest):
		return msgUpstreamSearch
	default:
		return msgSearchFailed
	}
}
