package applications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, caps capabilities.CapabilitiesResolver) {
	r.Route("/applications", func(ar chi.Router) {
		// adopter => propias, shelter => de sus mascotas, admin => todas
		ar.Get("/", listApplicationsHandler(svc, caps))
		ar.With(middleware.Require(caps, capabilities.SubmitApplication)).Post("/", submitApplicationHandler(svc))
		ar.With(middleware.Require(caps, capabilities.ReviewApplication)).Patch("/{appID}", updateStatusHandler(svc))
	})
}

type submitApplicationRequest struct {
	PetID int64  `json:"pet_id"`
	Notes string `json:"notes"`
}

type updateStatusRequest struct {
	Status Status `json:"status"`
}

type applicationResponse struct {
	ID          int64     `json:"id"`
	AdopterID   int64     `json:"adopter_id"`
	PetID       int64     `json:"pet_id"`
	Status      Status    `json:"status"`
	Notes       string    `json:"notes"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// listApplicationsHandler godoc
// @Summary Listar solicitudes de adopción
// @Description El resultado depende del rol: adopter ve las propias, shelter las de sus mascotas y admin todas.
// @Tags applications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-User-Role header string false "Solo en modo dev, rol del usuario"
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} applicationResponse
// @Failure 401 {string} string "unauthorized"
// @Router /api/applications [get]
func listApplicationsHandler(svc *Service, caps capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.UserID <= 0 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var (
			items []Application
			err   error
		)
		if canViewAll(r.Context(), caps, claims.Role) {
			items, err = svc.List(r.Context())
		} else {
			items, err = svc.ListFor(r.Context(), claims)
		}
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]applicationResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toApplicationResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// submitApplicationHandler godoc
// @Summary Enviar solicitud de adopción
// @Description Solo adoptantes. La mascota debe estar available y approved; notes es obligatorio.
// @Tags applications
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body submitApplicationRequest true "Mascota y notas"
// @Success 201 {object} applicationResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "pet not found"
// @Failure 409 {string} string "pet is not available for adoption"
// @Router /api/applications [post]
func submitApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req submitApplicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Submit(r.Context(), claims.UserID, req.PetID, req.Notes)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toApplicationResponse(a))
	}
}

func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "appID"), 10, 64)
		if err != nil {
			http.Error(w, "application not found", http.StatusNotFound)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.UpdateStatus(r.Context(), id, req.Status, claims)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toApplicationResponse(a))
	}
}

func canViewAll(ctx context.Context, caps capabilities.CapabilitiesResolver, role auth.Role) bool {
	ok, err := caps.Can(ctx, capabilities.CapabilityCheck{Role: role, Capability: capabilities.ViewAllApps})
	return err == nil && ok
}

func toApplicationResponse(a Application) applicationResponse {
	return applicationResponse{
		ID:          a.ID,
		AdopterID:   a.AdopterID,
		PetID:       a.PetID,
		Status:      a.Status,
		Notes:       a.Notes,
		SubmittedAt: a.SubmittedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrPetNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrPetUnavailable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
