// package models defines the data model for the track resolution service
package models

// TrackQuery is a single free-text resolution request.
type TrackQuery struct {
	SongName string `json:"songName"`
	Artist   string `json:"artist,omitempty"`
}

// Track is a normalized catalog search hit.
//
// The JSON field names are the wire contract consumed by the mixtape UI;
// a single resolved track is serialized with these fields at the top level.
type Track struct {
	SongName  string  `json:"songName"`
	Artist    string  `json:"artist"`             // comma-joined performer names, upstream order
	Duration  int     `json:"duration"`           // seconds, rounded from the catalog's milliseconds
	AlbumArt  *string `json:"albumArt"`           // first album image URL, null when the album has none
	AlbumName string  `json:"albumName"`
	SpotifyID string  `json:"spotifyId"`
}

// ResolutionState tags the outcome of a resolution.
type ResolutionState int

const (
	ResolvedSingle ResolutionState = iota
	ResolvedMultiple
	ResolutionNotFound
	ResolutionFailed
)

// Resolution is the outcome of resolving a [TrackQuery].
//
// Exactly one of Track, Candidates, or Err is populated depending on State;
// ResolutionNotFound carries nothing.
type Resolution struct {
	State      ResolutionState
	Track      *Track
	Candidates []Track
	Err        error
}

// Single builds a resolution for an unambiguous match.
func Single(track Track) Resolution {
	return Resolution{State: ResolvedSingle, Track: &track}
}

// Multiple builds a resolution whose candidates need caller-side selection.
// Candidate order is preserved as returned by the catalog.
func Multiple(candidates []Track) Resolution {
	return Resolution{State: ResolvedMultiple, Candidates: candidates}
}

// NotFound builds the structural zero-result outcome.
func NotFound() Resolution {
	return Resolution{State: ResolutionNotFound}
}

// Failed builds a resolution carrying a classified error.
func Failed(err error) Resolution {
	return Resolution{State: ResolutionFailed, Err: err}
}

// MultipleResponse is the wire shape for an ambiguous resolution.
type MultipleResponse struct {
	Results  []Track `json:"results"`
	Multiple bool    `json:"multiple"`
}

// ErrorResponse is the wire shape for every failure surfaced to the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the wire shape of the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
