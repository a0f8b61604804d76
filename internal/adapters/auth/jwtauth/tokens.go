package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pet-adoption/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "pet-adoption"

type Config struct {
	Secret string
	TTL    time.Duration
}

// Service firma y verifica tokens de sesión HS256.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

var _ auth.TokenService = (*Service)(nil)

func New(cfg Config) (*Service, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("jwtauth: secret is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Service{secret: []byte(cfg.Secret), ttl: ttl, now: time.Now}, nil
}

// TTL devuelve la duración de las sesiones emitidas (la usa la cookie).
func (s *Service) TTL() time.Duration { return s.ttl }

func (s *Service) Issue(_ context.Context, c auth.Claims) (string, error) {
	if c.UserID <= 0 {
		return "", errors.New("jwtauth: user id required")
	}
	if !c.Role.Valid() {
		return "", fmt.Errorf("jwtauth: invalid role %q", c.Role)
	}

	now := s.now()
	exp := now.Add(s.ttl)
	if !c.ExpiresAt.IsZero() {
		exp = c.ExpiresAt
	}

	claims := sessionClaims{
		Email: c.Email,
		Role:  string(c.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(c.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtauth: sign: %w", err)
	}
	return signed, nil
}

func (s *Service) Verify(_ context.Context, token string) (auth.Claims, error) {
	var sc sessionClaims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(token), &sc, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	uid, err := strconv.ParseInt(sc.Subject, 10, 64)
	if err != nil || uid <= 0 {
		return auth.Claims{}, fmt.Errorf("%w: bad subject", auth.ErrInvalidToken)
	}
	role := auth.Role(sc.Role)
	if !role.Valid() {
		return auth.Claims{}, fmt.Errorf("%w: bad role", auth.ErrInvalidToken)
	}

	return auth.Claims{
		UserID:    uid,
		Email:     sc.Email,
		Role:      role,
		ExpiresAt: sc.ExpiresAt.Time,
	}, nil
}
