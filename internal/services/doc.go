// Package services contains the outbound HTTP integrations.
//
// # Catalog
//
// [SpotifyService] implements [Catalog] against the Spotify Web API search
// endpoint. It owns the process-wide credential state through an embedded
// [TokenManager]: callers never see tokens, they just issue searches.
//
// # Credential lifecycle
//
// [TokenManager] performs the OAuth2 client-credentials exchange and caches
// the resulting bearer token in memory. A cached token is reused until its
// expiry minus a five-minute safety margin; a failed exchange is never
// cached, so the next request retries fresh. The manager is constructed per
// process and handed to the catalog client, keeping credential state out of
// globals and making test isolation a matter of building a fresh instance.
//
// # Instance client
//
// [APIService] is a small client for a running tapedeck instance, used by
// the CLI health and search commands.
package services
