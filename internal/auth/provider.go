// Package auth supplies bearer tokens for outbound API calls. Tokens are
// resolved just-in-time per call because they expire; tenant scoping is
// implicit in the token, never passed as an explicit header.
package auth

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rfpdocs/internal/config"
	"rfpdocs/internal/domain"
)

// TokenProvider resolves the current bearer token. An empty token with a nil
// error means "call anonymously"; providers that require a token return
// domain.ErrNoToken instead.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Static always returns the same token.
type Static struct {
	token string
}

// NewStatic creates a provider for a fixed token.
func NewStatic(token string) *Static {
	return &Static{token: strings.TrimSpace(token)}
}

func (s *Static) Token(_ context.Context) (string, error) {
	if s.token == "" {
		return "", domain.ErrNoToken
	}
	return s.token, nil
}

// File re-reads a token file on every call, so an external refresher can
// rotate the token without restarting the client.
type File struct {
	path string
}

// NewFile creates a provider that reads the token from path.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Token(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", domain.ErrNoToken
	}
	return token, nil
}

// expiryLeeway is how long before the exp claim a cached token is discarded.
const expiryLeeway = 30 * time.Second

// Caching wraps another provider and reuses its token until the JWT exp
// claim is near. Tokens without a readable exp claim are never cached.
type Caching struct {
	inner TokenProvider
	now   func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

// NewCaching creates a caching decorator around inner.
func NewCaching(inner TokenProvider) *Caching {
	return &Caching{inner: inner, now: time.Now}
}

func (c *Caching) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Add(expiryLeeway).Before(c.expires) {
		return c.token, nil
	}

	token, err := c.inner.Token(ctx)
	if err != nil {
		return "", err
	}

	exp, ok := tokenExpiry(token)
	if !ok {
		// Not cacheable; hand it through without retaining it.
		c.token = ""
		return token, nil
	}
	c.token = token
	c.expires = exp
	return token, nil
}

// tokenExpiry reads the exp claim from a JWT without verifying the
// signature. Verification is the backend's job; the client only needs the
// expiry to avoid sending a token that is already dead.
func tokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// FromConfig builds the provider chain described by cfg: a literal token
// takes precedence, then a token file wrapped in expiry-aware caching.
func FromConfig(cfg *config.AuthConfig) TokenProvider {
	if cfg.Token != "" {
		return NewStatic(cfg.Token)
	}
	if cfg.TokenFile != "" {
		return NewCaching(NewFile(cfg.TokenFile))
	}
	return NewStatic("")
}
