// Package auth issues and validates the HS256 access tokens that identify
// the owner of suggestion records.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

// JWTManager handles JWT access token generation and validation.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// GenerateAccessToken creates a signed HS256 JWT with the user ID as subject.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return m.generate(userID, m.accessTTL)
}

// GenerateAccessTokenTTL is GenerateAccessToken with an explicit lifetime.
func (m *JWTManager) GenerateAccessTokenTTL(userID uuid.UUID, ttl time.Duration) (string, error) {
	return m.generate(userID, ttl)
}

func (m *JWTManager) generate(userID uuid.UUID, ttl time.Duration) (string, error) {
	if userID == uuid.Nil {
		return "", fmt.Errorf("sign token: empty subject")
	}
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token and returns
// the user ID. Every failure wraps domain.ErrUnauthorized.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("%w: token is empty", domain.ErrUnauthorized)
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenInvalidIssuer) {
			return uuid.Nil, fmt.Errorf("%w: invalid issuer: %w", domain.ErrUnauthorized, err)
		}
		return uuid.Nil, fmt.Errorf("%w: parse token: %w", domain.ErrUnauthorized, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: invalid subject %q", domain.ErrUnauthorized, claims.Subject)
	}
	return userID, nil
}

// ValidateToken adapts ValidateAccessToken to the HTTP auth middleware.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	return m.ValidateAccessToken(token)
}
