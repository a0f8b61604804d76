package middleware

import (
	"net/http"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/capabilities"

	"go.uber.org/zap"
)

// Require corta con 401 si no hay claims y con 403 si el rol no tiene la capability.
func Require(resolver capabilities.CapabilitiesResolver, capability capabilities.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok || claims.UserID <= 0 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			allowed, err := resolver.Can(r.Context(), capabilities.CapabilityCheck{
				Role:       claims.Role,
				Capability: capability,
			})
			if err != nil {
				logger.Get(r.Context()).Warn("capability check failed",
					zap.String("capability", string(capability)), zap.Error(err))
			}
			if err != nil || !allowed {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
