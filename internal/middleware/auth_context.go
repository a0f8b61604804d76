package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"

	"go.uber.org/zap"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// SessionCookie es la cookie que usa el dashboard HTML para cargar el token.
const SessionCookie = "session"

type AuthOptions struct {
	Verifier auth.AuthVerifier

	// Roles, si está, reemplaza el rol del token por el guardado. Un usuario
	// que ya no existe sigue sin claims.
	Roles auth.RoleSource

	// DevHeaders habilita X-Debug-User-ID / X-Debug-User-Role.
	// Si Verifier es nil se habilitan siempre (modo dev).
	DevHeaders bool
}

// AuthContext:
// - Bearer token o cookie de sesión => Verify() y setea claims.
// - Modo dev: X-Debug-User-ID (+ X-Debug-User-Role, default adopter) => claims.
// - Si no hay claims, el request sigue igual; los handlers decidirán si exigen auth.
func AuthContext(opts AuthOptions) func(http.Handler) http.Handler {
	devHeaders := opts.DevHeaders || opts.Verifier == nil

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if devHeaders {
				if claims, ok := debugClaims(r); ok {
					next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
					return
				}
			}

			if opts.Verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				if c, err := r.Cookie(SessionCookie); err == nil {
					token = strings.TrimSpace(c.Value)
				}
			}
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := opts.Verifier.Verify(r.Context(), token)
			if err != nil {
				// No cortamos aquí para no acoplar. El handler decide 401/403.
				logger.Get(r.Context()).Debug("session token rejected", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if opts.Roles != nil {
				role, err := opts.Roles.RoleOf(r.Context(), claims.UserID)
				if err != nil {
					logger.Get(r.Context()).Debug("session user lookup failed", zap.Int64("user_id", claims.UserID), zap.Error(err))
					next.ServeHTTP(w, r)
					return
				}
				claims.Role = role
			}

			ctx := WithClaims(r.Context(), claims)
			ctx = logger.WithFields(ctx, zap.Int64("user_id", claims.UserID), zap.String("role", string(claims.Role)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func debugClaims(r *http.Request) (auth.Claims, bool) {
	raw := strings.TrimSpace(r.Header.Get("X-Debug-User-ID"))
	if raw == "" {
		return auth.Claims{}, false
	}
	uid, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || uid <= 0 {
		return auth.Claims{}, false
	}

	role := auth.Role(strings.ToLower(strings.TrimSpace(r.Header.Get("X-Debug-User-Role"))))
	if role == "" {
		role = auth.RoleAdopter
	}
	if !role.Valid() {
		return auth.Claims{}, false
	}
	return auth.Claims{UserID: uid, Role: role}, true
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
