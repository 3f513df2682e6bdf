package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenSubject identifies admin session tokens. There is a single admin
// role; no per-admin identity exists in this system.
const tokenSubject = "admin"

// AdminService verifies the manager password and issues/validates the JWT
// session tokens used by the admin-only endpoints.
//
// The password comparison is verbatim (constant-time, but unhashed), which
// mirrors how learner credentials are checked. Moving either to a hashed
// scheme is a known risk accepted by the current design.
type AdminService struct {
	adminPassword []byte
	tokenSecret   []byte
	tokenLifetime time.Duration
	logger        *slog.Logger
}

// NewAdminService creates an AdminService. lifetime bounds how long an
// issued session token stays valid.
func NewAdminService(adminPassword, tokenSecret string, lifetime time.Duration, log *slog.Logger) *AdminService {
	if log == nil {
		log = slog.Default()
	}
	return &AdminService{
		adminPassword: []byte(adminPassword),
		tokenSecret:   []byte(tokenSecret),
		tokenLifetime: lifetime,
		logger:        log.With("component", "admin_auth"),
	}
}

// Login checks the manager password and returns a signed session token.
// Returns ErrEmptyPassword or ErrInvalidPassword on failure.
func (s *AdminService) Login(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if subtle.ConstantTimeCompare([]byte(password), s.adminPassword) != 1 {
		s.logger.Warn("manager login rejected")
		return "", ErrInvalidPassword
	}

	token, err := s.generateToken()
	if err != nil {
		s.logger.Error("failed to sign session token", "error", err)
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	s.logger.Info("manager logged in")
	return token, nil
}

// ValidateToken verifies a session token's signature, subject and expiry.
func (s *AdminService) ValidateToken(tokenString string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.tokenSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject != tokenSubject {
		return ErrInvalidToken
	}
	return nil
}

func (s *AdminService) generateToken() (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   tokenSubject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.tokenSecret)
}
