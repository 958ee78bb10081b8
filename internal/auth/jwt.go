// internal/auth/jwt.go
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"product-intel/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidClaims = errors.New("invalid token claims")
	ErrNoSecret      = errors.New("token secret not configured")
)

// TokenService verifies session tokens issued by the hosted auth provider.
type TokenService struct {
	secretKey []byte
	expiresIn time.Duration
	issuer    string
}

func NewTokenService(cfg config.Config) *TokenService {
	return &TokenService{
		secretKey: []byte(cfg.JWTSecret),
		expiresIn: cfg.JWTExpiresIn,
		issuer:    cfg.AuthIssuer,
	}
}

// GenerateToken signs a session token for userID. The provider issues real
// sessions; this is for local development and tests.
func (s *TokenService) GenerateToken(userID string) (string, error) {
	if len(s.secretKey) == 0 {
		return "", ErrNoSecret
	}
	if userID == "" {
		return "", errors.New("empty user id")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	slog.Debug("JWT generated", "user_id", userID, "expires_at", claims.ExpiresAt.Format(time.DateTime))
	return tokenStr, nil
}

// ParseToken validates tokenStr and returns the user id from its subject.
func (s *TokenService) ParseToken(tokenStr string) (string, error) {
	if len(s.secretKey) == 0 {
		return "", ErrNoSecret
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", ErrInvalidClaims
	}
	slog.Debug("JWT parsed successfully", "user_id", claims.Subject)
	return claims.Subject, nil
}
