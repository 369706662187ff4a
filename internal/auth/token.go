// Package auth provides access-token issuing/parsing and password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload, unexpected algorithm, or natural expiry. Callers only
// need the binary outcome.
var ErrInvalidToken = errors.New("invalid or expired token")

// AccessToken carries a signed JWT together with its expiry so callers can
// report the validity window to clients.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// Identity is the authenticated subject decoded from a token.
type Identity struct {
	UserID uint64
	Role   string
}

// IssueAccessToken signs an HS256 JWT embedding the user id (sub) and role.
// The token is valid for ttlHours from now. Issuing has no side effects and
// there is no revocation: a token stays usable until expiry even if the
// subject's role or password changes afterwards.
func IssueAccessToken(secret string, userID uint64, role string, ttlHours int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies signature and expiry and extracts the identity.
// Any failure collapses into ErrInvalidToken.
func ParseAccessToken(secret, raw string) (Identity, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	// Numeric JSON claims decode as float64.
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return Identity{}, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: uint64(sub), Role: role}, nil
}
