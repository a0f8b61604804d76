package auth

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid token")

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Issuer emite tokens de sesión después de un login correcto.
type Issuer interface {
	Issue(ctx context.Context, c Claims) (string, error)
}

// TokenService junta ambas caras; el adapter jwtauth implementa las dos.
// TTL es la vida de cada token emitido.
type TokenService interface {
	AuthVerifier
	Issuer
	TTL() time.Duration
}

// RoleSource da el rol vigente de un usuario; el del token puede estar viejo.
type RoleSource interface {
	RoleOf(ctx context.Context, userID int64) (Role, error)
}
