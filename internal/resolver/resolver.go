// Package resolver turns free-text song queries into normalized track records.
//
// A resolution runs to completion within one request: build the search
// query, search the catalog (which acquires a bearer token internally),
// normalize every hit, then disambiguate. Zero hits is a structural
// NotFound outcome, one hit resolves directly, and two or more hits are
// returned as an ordered candidate list for the caller to present to an
// end user. The resolver never guesses among multiple candidates, and it
// never retries: a caller that wants retry-on-transient-failure re-invokes
// Resolve.
package resolver

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/amdecker/tapedeck/internal/models"
	"github.com/amdecker/tapedeck/internal/services"
	"github.com/amdecker/tapedeck/internal/shared"
	"github.com/charmbracelet/log"
)

// Resolver resolves track queries against an upstream catalog.
type Resolver struct {
	catalog services.Catalog
	logger  *log.Logger
}

// New creates a Resolver backed by the given catalog.
func New(catalog services.Catalog, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Resolver{catalog: catalog, logger: logger}
}

// BuildQuery constructs the catalog search string for a track query.
//
// A non-blank artist produces structured track:/artist: filters, which
// sharply narrow results when both fields are known; otherwise the trimmed
// song name alone is used, which is more forgiving for title-only input.
func BuildQuery(query models.TrackQuery) string {
	song := strings.TrimSpace(query.SongName)
	artist := strings.TrimSpace(query.Artist)

	if artist != "" {
		return fmt.Sprintf("track:%s artist:%s", song, artist)
	}

	return song
}

// Resolve turns a query into zero, one, or many normalized candidate tracks.
func (r *Resolver) Resolve(ctx context.Context, query models.TrackQuery) models.Resolution {
	q := BuildQuery(query)

	hits, err := r.catalog.SearchTracks(ctx, q)
	if err != nil {
		r.logger.Error("catalog search failed", "query", q, "error", err)
		return models.Failed(err)
	}

	tracks := make([]models.Track, 0, len(hits))
	for _, hit := range hits {
		tracks = append(tracks, Normalize(hit))
	}

	r.logger.Info("catalog search complete", "query", q, "results", len(tracks))

	switch len(tracks) {
	case 0:
		return models.NotFound()
	case 1:
		return models.Single(tracks[0])
	default:
		return models.Multiple(tracks)
	}
}

// Normalize maps a raw catalog hit into a track record.
//
// Performer names are comma-joined in upstream order, the millisecond
// duration is rounded to whole seconds (never negative), and the album art
// is the first image URL when the album has any.
func Normalize(hit services.SpotifyTrack) models.Track {
	names := make([]string, 0, len(hit.Artists))
	for _, artist := range hit.Artists {
		names = append(names, artist.Name)
	}

	duration := int(math.Round(float64(hit.DurationMS) / 1000))
	if duration < 0 {
		duration = 0
	}

	var art *string
	if len(hit.Album.Images) > 0 && hit.Album.Images[0].URL != "" {
		u := hit.Album.Images[0].URL
		art = &u
	}

	return models.Track{
		SongName:  hit.Name,
		Artist:    strings.Join(names, ", "),
		Duration:  duration,
		AlbumArt:  art,
		AlbumName: hit.Album.Name,
		SpotifyID: hit.ID,
	}
}
