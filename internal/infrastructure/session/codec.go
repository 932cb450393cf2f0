package session

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mykare/auth-core/internal/core/domain"
)

// PlainCodec stores the session as a human-inspectable JSON projection. This
// is the default and matches the original storage format.
type PlainCodec struct{}

func (PlainCodec) Encode(session *domain.Session) (string, error) {
	raw, err := json.Marshal(session)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (PlainCodec) Decode(value string) (*domain.Session, error) {
	var s domain.Session
	if err := json.Unmarshal([]byte(value), &s); err != nil {
		return nil, nil
	}
	if s.Username == "" {
		return nil, nil
	}
	return &s, nil
}

// SignedCodec stores the session as an HS256 JWT so local tampering with the
// persisted identity is detectable. A session whose signature does not verify
// decodes as absent.
type SignedCodec struct {
	secret []byte
}

func NewSignedCodec(secret string) *SignedCodec {
	return &SignedCodec{secret: []byte(secret)}
}

func (c *SignedCodec) Encode(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"fullname": session.Fullname,
		"username": session.Username,
		"role":     session.Role,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

func (c *SignedCodec) Decode(value string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, nil
	}

	s := &domain.Session{
		Fullname: stringClaim(claims, "fullname"),
		Username: stringClaim(claims, "username"),
		Role:     stringClaim(claims, "role"),
	}
	if s.Username == "" {
		return nil, nil
	}
	return s, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
