package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"renthub/models"
)

var (
	errInvalidToken = errors.New("invalid token")
	errTokenExpired = errors.New("token expired")
)

// jwtClaims é o payload mínimo do access token:
//   { "sub": <userId>, "role": "...", "iat": ..., "exp": ... }
// O role é informativo; a autorização sempre usa o usuário carregado do banco.
type jwtClaims struct {
	Sub  int64  `json:"sub"`
	Role string `json:"role"`
	Exp  int64  `json:"exp"`
	Iat  int64  `json:"iat"`
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}
}

// Issue returns a signed token for user and its expiry (unix seconds).
func (t *TokenIssuer) Issue(user models.User) (string, int64, error) {
	now := t.now()
	exp := now.Add(t.ttl).Unix()
	token, err := signHS256JWT(t.secret, jwtClaims{
		Sub:  user.ID,
		Role: user.EffectiveRole(),
		Iat:  now.Unix(),
		Exp:  exp,
	})
	return token, exp, err
}

func (t *TokenIssuer) Parse(token string) (jwtClaims, error) {
	claims, ok := parseAndVerifyJWT(token, t.secret)
	if !ok {
		return jwtClaims{}, errInvalidToken
	}
	if claims.Exp > 0 && t.now().Unix() > claims.Exp {
		return jwtClaims{}, errTokenExpired
	}
	return claims, nil
}

func signHS256JWT(secret string, claims jwtClaims) (string, error) {
	headB, err := json.Marshal(map[string]any{"alg": "HS256", "typ": "JWT"})
	if err != nil {
		return "", err
	}
	payloadB, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	enc := base64.RawURLEncoding
	unsigned := enc.EncodeToString(headB) + "." + enc.EncodeToString(payloadB)

	h := hmac.New(sha256.New, []byte(secret))
	_, _ = h.Write([]byte(unsigned))
	return unsigned + "." + enc.EncodeToString(h.Sum(nil)), nil
}

func parseAndVerifyJWT(token string, secret string) (jwtClaims, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return jwtClaims{}, false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(parts[0] + "." + parts[1]))
	expected := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return jwtClaims{}, false
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return jwtClaims{}, false
	}
	var claims jwtClaims
	if err := json.Unmarshal(payloadBytes, &claims); err != nil {
		return jwtClaims{}, false
	}
	if claims.Sub == 0 {
		return jwtClaims{}, false
	}
	return claims, true
}
