package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bbeualll199/uso-auth/internal/auth"
)

// ErrInvalidCredential is the only error Validate returns. Signature
// mismatch, wrong algorithm, wrong issuer or audience, expiry and malformed
// input all collapse into it so callers cannot learn which check failed.
var ErrInvalidCredential = errors.New("invalid credential")

// Claims is the fixed claim set of an internal credential.
type Claims struct {
	Provider       string `json:"provider"`
	ProviderUserID string `json:"provider_user_id"`
	jwt.RegisteredClaims
}

// Manager issues and validates internal credentials with a single symmetric
// HMAC secret. It holds no per-token state; issued credentials are never
// stored server-side.
type Manager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewManager(secret, issuer, audience string, ttl time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue mints a signed credential for a verified identity. The subject is
// "<provider>:<providerUserID>", so the credential is self-describing and
// minting never needs a store lookup.
func (m *Manager) Issue(identity *auth.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		Provider:       identity.Provider,
		ProviderUserID: identity.ProviderUserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject(),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Validate parses and verifies a credential, enforcing the signing method,
// signature, issuer, audience and expiry.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidCredential
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidCredential
	}
	return claims, nil
}
