package google

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func TestNewOAuth(t *testing.T) {
	o := NewOAuth("client-id", "client-secret", "https://api.example.com/api/auth/google/callback")

	if o.conf.ClientID != "client-id" {
		t.Errorf("ClientID = %q, want %q", o.conf.ClientID, "client-id")
	}
	if o.conf.RedirectURL != "https://api.example.com/api/auth/google/callback" {
		t.Errorf("RedirectURL = %q", o.conf.RedirectURL)
	}
	if len(o.conf.Scopes) != len(DefaultOAuthScopes) {
		t.Errorf("Scopes = %v, want %v", o.conf.Scopes, DefaultOAuthScopes)
	}
}

func TestAuthURL(t *testing.T) {
	o := NewOAuth("client-id", "client-secret", "https://api.example.com/callback")

	authURL := o.AuthURL()

	u, err := url.Parse(authURL)
	if err != nil {
		t.Fatalf("AuthURL returned unparseable URL: %v", err)
	}
	q := u.Query()

	if q.Get("client_id") != "client-id" {
		t.Errorf("client_id = %q, want %q", q.Get("client_id"), "client-id")
	}
	if q.Get("access_type") != "offline" {
		t.Errorf("access_type = %q, want offline", q.Get("access_type"))
	}
	if q.Get("prompt") != "consent" && q.Get("approval_prompt") != "force" {
		t.Error("expected forced consent in auth URL")
	}

	scopes := q.Get("scope")
	for _, want := range []string{"userinfo.profile", "userinfo.email", "drive.file"} {
		if !strings.Contains(scopes, want) {
			t.Errorf("scope %q missing from %q", want, scopes)
		}
	}
}

func TestHTTPClientFromToken(t *testing.T) {
	client := HTTPClientFromToken(context.Background(), "test-access-token")
	if client == nil {
		t.Fatal("HTTPClientFromToken returned nil")
	}

	transport, ok := client.Transport.(*oauth2.Transport)
	if !ok {
		t.Fatalf("Transport = %T, want *oauth2.Transport", client.Transport)
	}

	token, err := transport.Source.Token()
	if err != nil {
		t.Fatalf("token source failed: %v", err)
	}
	if token.AccessToken != "test-access-token" {
		t.Errorf("AccessToken = %q, want %q", token.AccessToken, "test-access-token")
	}
	if token.TokenType != "Bearer" {
		t.Errorf("TokenType = %q, want Bearer", token.TokenType)
	}

	base, ok := transport.Base.(*http.Transport)
	if !ok {
		t.Fatalf("base transport = %T, want *http.Transport", transport.Base)
	}
	if base.ForceAttemptHTTP2 {
		t.Error("expected HTTP/2 to be disabled")
	}
}

// HTTPClientFromToken is documented as side-effect-free; two calls with the
// same token must produce independent clients.
func TestHTTPClientFromTokenIsPure(t *testing.T) {
	ctx := context.Background()
	a := HTTPClientFromToken(ctx, "tok")
	b := HTTPClientFromToken(ctx, "tok")
	if a == b {
		t.Error("expected distinct clients per call")
	}
}
