// Package auth issues and validates the HS256 bearer tokens used by the
// users API and carries the authenticated identity through request contexts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/usersapi/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the payload embedded in a token.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Claims are the registered claims plus the caller's identity.
type Claims struct {
	jwt.RegisteredClaims
	Identity
}

// TokenService signs and verifies tokens with a single process-wide secret.
// It keeps no per-token state, so there is no revocation.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// Option customises a TokenService.
type Option func(*TokenService)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService refuses to start without a secret or with a non-positive
// validity.
func NewTokenService(secret []byte, validity time.Duration, opts ...Option) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, common.ErrMissingSecretKey
	}
	if validity <= 0 {
		return nil, common.ErrInvalidTokenTTL
	}
	s := &TokenService{secret: secret, validity: validity, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue returns a signed token for identity expiring after the configured
// validity. Failures wrap common.ErrSigning.
func (s *TokenService) Issue(identity Identity) (string, error) {
	if identity.UserID == "" {
		return "", fmt.Errorf("%w: empty user id", common.ErrSigning)
	}

	issuedAt := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.validity)),
		},
		Identity: identity,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrSigning, err)
	}

	return tokenString, nil
}

// Validate checks signature and expiry and returns the embedded identity.
// Every failure wraps common.ErrInvalidToken together with one of
// common.ErrTokenExpired, common.ErrTokenSignature or common.ErrTokenMalformed.
func (s *TokenService) Validate(tokenString string) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Identity{}, invalid(classify(err))
	}

	if !token.Valid {
		return Identity{}, invalid(common.ErrTokenMalformed)
	}
	if claims.UserID == "" {
		return Identity{}, invalid(common.ErrTokenMalformed)
	}

	return claims.Identity, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return common.ErrTokenSignature
	default:
		return common.ErrTokenMalformed
	}
}

func invalid(cause error) error {
	return fmt.Errorf("%w: %w", common.ErrInvalidToken, cause)
}

// FailureCause names the reason behind a Validate error for logs: expired,
// signature, malformed or unknown.
func FailureCause(err error) string {
	switch {
	case errors.Is(err, common.ErrTokenExpired):
		return "expired"
	case errors.Is(err, common.ErrTokenSignature):
		return "signature"
	case errors.Is(err, common.ErrTokenMalformed):
		return "malformed"
	default:
		return "unknown"
	}
}
