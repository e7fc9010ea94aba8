package google

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuth holds the OAuth2 configuration for the Google services letterdrive
// talks to. It is an immutable value constructed once at startup.
type OAuth struct {
	conf *oauth2.Config
}

// NewOAuth creates the OAuth2 configuration from the application credentials.
func NewOAuth(clientID, clientSecret, redirectURL string) *OAuth {
	return &OAuth{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       DefaultOAuthScopes,
		},
	}
}

// AuthURL returns the Google consent URL. Offline access is requested so the
// client receives a refresh token, and consent is forced so a refresh token is
// issued on every authorization, not just the first.
func (o *OAuth) AuthURL() string {
	return o.conf.AuthCodeURL("state", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange exchanges an authorization code for tokens. The tokens are handed
// back to the client; letterdrive never stores them.
func (o *OAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := o.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange auth code: %w", err)
	}
	return token, nil
}

// HTTPClientFromToken wraps a bearer access token in an authorized HTTP client.
//
// The token is not validated locally; an invalid or expired token surfaces only
// as an error from the first downstream call. The function is side-effect-free,
// so it is safe to call once per request.
func HTTPClientFromToken(ctx context.Context, accessToken string) *http.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	return client
}
