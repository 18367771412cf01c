package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/amdecker/tapedeck/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// tokenExpiryMargin is the buffer subtracted from a token's reported
// lifetime before treating it as expired, so a token never runs out
// mid-request.
const tokenExpiryMargin = 300 * time.Second

// TokenManager supplies a currently-valid application-level bearer token
// for the catalog API using the OAuth2 client-credentials grant.
//
// The credential lives only in process memory and is replaced, not mutated,
// on refresh. Refreshes are serialized behind a mutex so concurrent callers
// trigger at most one exchange per expiry window.
type TokenManager struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client

	mu    sync.Mutex
	token *oauth2.Token
}

// NewTokenManager creates a TokenManager for the given client credentials.
//
// tokenURL defaults to the Spotify accounts token endpoint and client to an
// [http.Client] with a 10 second timeout.
func NewTokenManager(clientID, clientSecret, tokenURL string, client *http.Client) *TokenManager {
	if tokenURL == "" {
		tokenURL = spotifyTokenURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &TokenManager{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     tokenURL,
		httpClient:   client,
	}
}

// Token returns a bearer token guaranteed to stay valid for at least
// [tokenExpiryMargin].
//
// Missing credentials fail immediately without a network call. A cached
// token inside its validity window is returned unchanged; otherwise the
// manager performs a client-credentials exchange (client id and secret as
// HTTP Basic auth, grant_type=client_credentials) against the token
// endpoint. A failed exchange caches nothing, so the next call retries.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	if m.clientID == "" || m.clientSecret == "" {
		return "", fmt.Errorf("%w: SPOTIFY_CLIENT_ID or SPOTIFY_CLIENT_SECRET not set", shared.ErrMissingCredentials)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != nil && time.Until(m.token.Expiry) > tokenExpiryMargin {
		return m.token.AccessToken, nil
	}

	conf := &clientcredentials.Config{
		ClientID:     m.clientID,
		ClientSecret: m.clientSecret,
		TokenURL:     m.tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	token, err := conf.Token(context.WithValue(ctx, oauth2.HTTPClient, m.httpClient))
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	m.token = token
	return token.AccessToken, nil
}
