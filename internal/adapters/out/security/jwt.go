// Package security issues and verifies access tokens and hashes passwords.
package security

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
)

// DefaultTokenTTL is how long an access token stays valid when no TTL is configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenService signs HS256 tokens whose subject is the user id.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTTokenService(secret string, ttl time.Duration) (*JWTTokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *JWTTokenService) Issue(claims ports.Claims) (string, error) {
	if err := claims.UserID.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Email: claims.Email,
		Role:  claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	return token.SignedString(s.secret)
}

func (s *JWTTokenService) Verify(token string) (ports.Claims, error) {
	var parsed accessClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return ports.Claims{}, errs.NewUnauthorizedErrorWithCause("invalid or expired token", err)
	}

	userID, err := kernel.UUIDFromString(parsed.Subject)
	if err != nil {
		return ports.Claims{}, errs.NewUnauthorizedErrorWithCause("invalid token subject", err)
	}

	return ports.Claims{UserID: userID, Email: parsed.Email, Role: parsed.Role}, nil
}
