package services

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	appleJWKSURL  = "https://appleid.apple.com/auth/keys"
	googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"
	jwksTTL       = 24 * time.Hour
)

// IdentityProvider describes where a federated provider publishes its
// signing keys and what its tokens must claim.
type IdentityProvider struct {
	Name     string
	JWKSURL  string
	Issuers  []string
	Audience string
}

type jwks struct {
	Keys []jwk `json:"keys"`
}

type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// JWKSClient caches a provider's RSA keys by kid and refetches on a miss
// or after jwksTTL.
type JWKSClient struct {
	mu         sync.RWMutex
	keys       map[string]*rsa.PublicKey
	expiresAt  time.Time
	httpClient *http.Client
	url        string
}

func NewJWKSClient(url string, httpClient *http.Client) *JWKSClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &JWKSClient{
		keys:       make(map[string]*rsa.PublicKey),
		httpClient: httpClient,
		url:        url,
	}
}

func (c *JWKSClient) fetchKeys() error {
	resp, err := c.httpClient.Get(c.url)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var set jwks
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := parseRSAPublicKey(k.N, k.E)
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}

	c.mu.Lock()
	c.keys = keys
	c.expiresAt = time.Now().Add(jwksTTL)
	c.mu.Unlock()
	return nil
}

func parseRSAPublicKey(nStr, eStr string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(nStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(eStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	var e int
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: e}, nil
}

// PublicKey returns the key for kid, refreshing the cache when needed.
func (c *JWKSClient) PublicKey(kid string) (*rsa.PublicKey, error) {
	c.mu.RLock()
	if key, ok := c.keys[kid]; ok && time.Now().Before(c.expiresAt) {
		c.mu.RUnlock()
		return key, nil
	}
	c.mu.RUnlock()

	if err := c.fetchKeys(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if key, ok := c.keys[kid]; ok {
		return key, nil
	}
	return nil, fmt.Errorf("public key with kid %s not found", kid)
}

// IdentityClaims is the subset of an OIDC identity token we rely on.
type IdentityClaims struct {
	Email         string      `json:"email"`
	EmailVerified interface{} `json:"email_verified"`
	jwt.RegisteredClaims
}

type providerVerifier struct {
	provider IdentityProvider
	keys     *JWKSClient
}

// IdentityVerifier checks federated identity tokens against each
// provider's published keys.
type IdentityVerifier struct {
	providers map[string]*providerVerifier
	now       func() time.Time
}

// NewIdentityVerifier registers Apple and Google when their client ids are
// configured.
func NewIdentityVerifier(cfg *config.Config) *IdentityVerifier {
	v := &IdentityVerifier{
		providers: make(map[string]*providerVerifier),
		now:       time.Now,
	}
	if cfg.AppleClientID != "" {
		v.Register(IdentityProvider{
			Name:     models.ProviderApple,
			JWKSURL:  appleJWKSURL,
			Issuers:  []string{"https://appleid.apple.com"},
			Audience: cfg.AppleClientID,
		}, nil)
	}
	if cfg.GoogleClientID != "" {
		v.Register(IdentityProvider{
			Name:     models.ProviderGoogle,
			JWKSURL:  googleJWKSURL,
			Issuers:  []string{"https://accounts.google.com", "accounts.google.com"},
			Audience: cfg.GoogleClientID,
		}, nil)
	}
	return v
}

func (v *IdentityVerifier) Register(p IdentityProvider, httpClient *http.Client) {
	v.providers[p.Name] = &providerVerifier{
		provider: p,
		keys:     NewJWKSClient(p.JWKSURL, httpClient),
	}
}

// Verify validates an RS256 identity token for provider and returns its
// claims. The email claim is required.
func (v *IdentityVerifier) Verify(provider, identityToken string) (*IdentityClaims, error) {
	pv, ok := v.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: provider %q is not configured", ErrInvalidIdentity, provider)
	}

	claims := &IdentityClaims{}
	_, err := jwt.ParseWithClaims(identityToken, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		return pv.keys.PublicKey(kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(pv.provider.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
	}

	if !issuerAllowed(claims.Issuer, pv.provider.Issuers) {
		return nil, fmt.Errorf("%w: invalid issuer %s", ErrInvalidIdentity, claims.Issuer)
	}
	if strings.TrimSpace(claims.Email) == "" {
		return nil, fmt.Errorf("%w: token carries no email", ErrInvalidIdentity)
	}
	if !emailVerified(claims.EmailVerified) {
		return nil, fmt.Errorf("%w: email is not verified", ErrInvalidIdentity)
	}
	return claims, nil
}

func issuerAllowed(iss string, allowed []string) bool {
	for _, a := range allowed {
		if iss == a {
			return true
		}
	}
	return false
}

// emailVerified accepts both boolean and string encodings; a missing
// claim counts as verified.
func emailVerified(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return x
	case string:
		return x == "true"
	default:
		return false
	}
}
