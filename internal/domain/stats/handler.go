package stats

import (
	"encoding/json"
	"net/http"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, caps capabilities.CapabilitiesResolver) {
	r.With(middleware.Require(caps, capabilities.ViewStats)).Get("/stats", statsHandler(svc))
}

// statsHandler godoc
// @Summary Estadísticas
// @Description admin => estadísticas de la plataforma; shelter => las de su refugio.
// @Tags stats
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} Platform
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /api/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var (
			out any
			err error
		)
		switch claims.Role {
		case auth.RoleAdmin:
			out, err = svc.Platform(r.Context())
		case auth.RoleShelter:
			out, err = svc.Shelter(r.Context(), claims.UserID)
		default:
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(out)
	}
}
