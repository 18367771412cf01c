// package services defines interface Catalog for the upstream track catalog
package services

import (
	"context"
)

// Catalog defines the interface for an upstream music catalog that can be
// searched for tracks.
type Catalog interface {
	// SearchTracks issues a track search for the given query string and
	// returns the raw hits in the order the catalog returned them.
	SearchTracks(ctx context.Context, query string) ([]SpotifyTrack, error)

	// Name returns the name of the catalog (e.g., "Spotify")
	Name() string
}
