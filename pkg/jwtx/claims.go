package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens. Field
// cadres often work from areas with patchy connectivity, so sessions are
// deliberately long-lived.
const DefaultAccessTokenTTL = 7 * 24 * time.Hour

// Claims are the access-token claims used across the platform.
type Claims struct {
	jwt.RegisteredClaims

	// Name is the display name of the authenticated user.
	Name string `json:"name,omitempty"`

	// Mobile is the login identifier (10-digit number).
	Mobile string `json:"mobile,omitempty"`

	// Role is the provisioned platform role, e.g. "CADRE" or "ADMIN".
	Role string `json:"role,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a signed-in user.
func NewAccessClaims(
	subject, name, mobile, role string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Name:   name,
		Mobile: mobile,
		Role:   role,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
