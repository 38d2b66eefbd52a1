package auth

import (
	"errors"
	"fmt"
	"time"

	"gymfit_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity bundle issued at login. Downstream handlers trust it
// without re-querying the user row.
type Claims struct {
	UserID string          `json:"uid"`
	Name   string          `json:"name"`
	Role   models.UserRole `json:"role"`
	Email  string          `json:"email"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies HMAC-signed identity tokens.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokenService builds a TokenService from configuration. A missing secret,
// issuer or audience is a configuration error the process must not start with.
func NewTokenService(secret, issuer, audience string, expireMinutes int) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is missing")
	}
	if issuer == "" {
		return nil, errors.New("jwt issuer is missing")
	}
	if audience == "" {
		return nil, errors.New("jwt audience is missing")
	}
	if expireMinutes <= 0 {
		expireMinutes = 60
	}

	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      time.Duration(expireMinutes) * time.Minute,
	}, nil
}

// Generate issues a signed token for the user, expiring after the configured
// lifetime.
func (s *TokenService) Generate(user *models.User) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature, issuer, audience and expiry, and returns the
// claims. Any failure makes the token worthless as identity.
func (s *TokenService) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
