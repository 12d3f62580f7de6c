package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService signs the bearer tokens handed out at login. A token only
// authorizes requests while the session pointer still names its subject.
type TokenService struct {
	secret []byte
	expiry time.Duration
	clock  Clock
}

func NewTokenService(cfg *config.Config, clock Clock) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.JWTSessionExpiry,
		clock:  clock,
	}
}

// Issue returns a signed HS256 token whose subject is accountID.
func (s *TokenService) Issue(accountID string) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, errors.New("JWT_SECRET is not configured")
	}
	now := s.clock.Now()
	expiresAt := now.Add(s.expiry)
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Subject validates token and returns the account id it was issued for.
func (s *TokenService) Subject(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoActiveSession, err)
	}
	if claims.Subject == "" {
		return "", ErrNoActiveSession
	}
	return claims.Subject, nil
}
