// Package scope issues tokens that name a client's storage namespace. A scope
// stands in for one browser's local storage: it carries no identity.
package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer   = "velvetstore-scope"
	idPrefix = "s_"
)

var ErrInvalidToken = errors.New("invalid scope token")

type TokenMaker struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenMaker signs tokens with secret. A zero ttl issues tokens that do not
// expire.
func NewTokenMaker(secret string, ttl time.Duration) *TokenMaker {
	return &TokenMaker{secret: []byte(secret), ttl: ttl}
}

type Claims struct {
	jwt.RegisteredClaims
}

// NewID returns a fresh namespace id.
func NewID() string {
	return idPrefix + uuid.NewString()
}

func (t *TokenMaker) New(id string) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  id,
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if t.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse returns the namespace id carried by tokenStr.
func (t *TokenMaker) Parse(tokenStr string) (string, error) {
	var c Claims

	token, err := jwt.ParseWithClaims(tokenStr, &c, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil || token == nil || !token.Valid || c.Subject == "" {
		return "", ErrInvalidToken
	}
	return c.Subject, nil
}
