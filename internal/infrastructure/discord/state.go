package discord

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gamedex/pkg/errors"
)

const stateTTL = 10 * time.Minute

// StateSigner signs and checks the OAuth state parameter so the callback can
// reject requests that did not originate from this service.
type StateSigner struct {
	secret []byte
}

func NewStateSigner(secret string) *StateSigner {
	return &StateSigner{secret: []byte(secret)}
}

func (s *StateSigner) Sign() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "gamedex",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Internal("Failed to sign state", err)
	}
	return signed, nil
}

func (s *StateSigner) Verify(state string) error {
	token, err := jwt.Parse(state, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.BadRequest("Unexpected signing method", nil)
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return errors.BadRequest("Invalid or expired state", err)
	}
	return nil
}
