// Package auth implements the token codec: issuing signed access tokens and
// verifying presented ones. Tokens are HS256 JWTs, so the wire format is the
// usual three dot-separated base64url segments and the HMAC comparison inside
// the library is constant-time.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the set of statements embedded into every issued token:
// the standard registered claims (iat, exp) plus the authenticated username.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Codec signs and verifies access tokens. The secret key, token lifetime and
// clock are fixed at construction, so isolated instances can coexist in tests.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a Codec. A nil now falls back to time.Now; tests inject
// their own clock. Issuance and verification share the same clock source.
func NewCodec(secret []byte, ttl time.Duration, now func() time.Time) *Codec {
	if now == nil {
		now = time.Now
	}
	return &Codec{secret: secret, ttl: ttl, now: now}
}

// Issue returns a signed token asserting the given username, valid from now
// until now plus the configured lifetime.
func (c *Codec) Issue(username string) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Username: username,
	})

	return token.SignedString(c.secret)
}

// Verify parses and validates a token string and returns the embedded claims.
// Failures are reported as exactly one of common.ErrTokenSignature,
// common.ErrTokenExpired or common.ErrTokenMalformed. A token that is both
// tampered with and expired reports the signature mismatch.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !token.Valid || claims.Username == "" {
		return nil, common.ErrTokenMalformed
	}

	return claims, nil
}
