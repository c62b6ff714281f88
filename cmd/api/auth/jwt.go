package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what every pipeline operation requires from the session layer.
type Identity struct {
	UserID      string
	AccessToken string
}

// JWTManager signs and verifies session tokens with a single HS256 secret.
// The token carries the user id as sub and the Google access token as a
// private claim, so each request can rebuild a platform client without
// server-side token storage.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManagerFromEnv reads the secret and issuer from the environment.
//
// - JWT_SECRET: HS256 signing secret (required)
// - JWT_ISSUER: iss claim value (optional, defaults to "comment-pilot")
func NewJWTManagerFromEnv() (*JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "comment-pilot"
	}

	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		// Matches the Google access token lifetime; an expired embedded
		// token would fail platform calls anyway.
		ttl: time.Hour,
	}, nil
}

func (m *JWTManager) Sign(id Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub": id.UserID,
		"yat": id.AccessToken,
		"iss": m.issuer,
		"exp": time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) Parse(tokenString string) (Identity, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	accessToken, _ := claims["yat"].(string)
	if sub == "" {
		return Identity{}, fmt.Errorf("token missing sub claim")
	}

	return Identity{UserID: sub, AccessToken: accessToken}, nil
}
