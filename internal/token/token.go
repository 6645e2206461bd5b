package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token is expired")

	// ErrMissingSecret surfaces a missing JWT_SECRET at the first sign or
	// verify call. HMAC with an empty key would otherwise produce tokens
	// anyone can forge.
	ErrMissingSecret = errors.New("signing secret is not configured")
)

const defaultTTL = 7 * 24 * time.Hour

// Issuer signs and verifies HS256 identity tokens. Any two processes sharing
// the same secret can verify each other's tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret []byte) *Issuer {
	return &Issuer{secret: secret, ttl: defaultTTL}
}

// Issue returns a signed token carrying subjectID, expiring in 7 days.
func (i *Issuer) Issue(subjectID string) (string, error) {
	if len(i.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify parses and validates a raw token and returns its subject ID.
// Expired tokens yield ErrTokenExpired; everything else that fails
// (malformed, tampered, wrong key, wrong algorithm) yields ErrTokenInvalid.
func (i *Issuer) Verify(raw string) (string, error) {
	if len(i.secret) == 0 {
		return "", ErrMissingSecret
	}

	t, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return "", ErrTokenInvalid
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrTokenInvalid
	}
	return sub, nil
}
