// Package auth verifies the HS256 bearer tokens issued by the identity service
// and turns them into kernel.Actor values.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrMissingToken is returned when no bearer token was presented.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken covers bad signatures, expired tokens and malformed claims.
	ErrInvalidToken = errors.New("invalid bearer token")
)

// JWTVerifier checks tokens signed with a shared secret. Claims: sub is the
// user uuid, role is customer, courier or admin.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

// Verify parses raw and returns the actor it identifies.
func (v *JWTVerifier) Verify(raw string) (kernel.Actor, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return kernel.Actor{}, ErrMissingToken
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return kernel.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return kernel.Actor{}, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := kernel.UUIDFromString(sub)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: sub: %v", ErrInvalidToken, err)
	}

	roleClaim, _ := claims["role"].(string)
	role, err := kernel.ParseRole(roleClaim)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: role: %v", ErrInvalidToken, err)
	}

	actor, err := kernel.NewActor(userID, role)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return actor, nil
}

// Issue signs a token for actor. Used by tests and the dev token command.
func (v *JWTVerifier) Issue(actor kernel.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  actor.UserID().String(),
		"role": string(actor.Role()),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// BearerToken extracts the token of an "Authorization: Bearer ..." header value.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
