package pets

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
	r.Route("/pets", func(pr chi.Router) {
		pr.With(middleware.Require(caps, capabilities.BrowsePets)).Get("/", listPetsHandler(svc, caps))
		pr.With(middleware.Require(caps, capabilities.ListPet)).Post("/", createPetHandler(svc))

		// Listadas: cualquiera. No listadas: admin o refugio dueño.
		pr.With(middleware.Require(caps, capabilities.BrowsePets)).Get("/{petID}", getPetHandler(svc, caps))

		pr.With(middleware.Require(caps, capabilities.ModeratePets)).Post("/{petID}/approve", moderateHandler(svc.Approve))
		pr.With(middleware.Require(caps, capabilities.ModeratePets)).Post("/{petID}/reject", moderateHandler(svc.Reject))
	})

	// Mascotas del refugio logueado
	r.With(middleware.Require(caps, capabilities.ListPet)).Get("/me/pets", listMyPetsHandler(svc))
}

type createPetRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Breed       string `json:"breed"`
	Age         int    `json:"age"`
	Description string `json:"description"`
}

type petResponse struct {
	ID          int64     `json:"id"`
	ShelterID   int64     `json:"shelter_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Approval    Approval  `json:"approval"`
	CreatedAt   time.Time `json:"created_at"`
}

// createPetHandler godoc
// @Summary Publicar mascota
// @Description El refugio logueado publica una mascota. Queda available y pending hasta que un admin la apruebe. Autenticación: `X-Debug-User-ID` + `X-Debug-User-Role` (dev) o `Authorization: Bearer <token>`.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-User-Role header string false "Solo en modo dev, rol del usuario"
// @Param Authorization header string false "Bearer token"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /api/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:        req.Name,
			Type:        req.Type,
			Breed:       req.Breed,
			Age:         req.Age,
			Description: req.Description,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Sin filtro un adoptante o refugio ve solo las listadas (available + approved). El admin puede pedir filter=available|adopted|approved|pending o todas. type y breed buscan por substring entre las listadas.
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param filter query string false "available | adopted | approved | pending"
// @Param type query string false "Substring del tipo (Dog, Cat, ...)"
// @Param breed query string false "Substring de la raza"
// @Success 200 {array} petResponse
// @Failure 400 {string} string "invalid filter"
// @Failure 401 {string} string "unauthorized"
// @Router /api/pets [get]
func listPetsHandler(svc *Service, caps capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		q := r.URL.Query()

		var (
			items []Pet
			err   error
		)
		switch {
		case q.Has("type") || q.Has("breed"):
			items, err = svc.Search(r.Context(), q.Get("type"), q.Get("breed"))
		case canViewAll(r.Context(), caps, claims.Role):
			items, err = svc.ListFiltered(r.Context(), q.Get("filter"))
		default:
			items, err = svc.ListAvailable(r.Context())
		}
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid filter", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func getPetHandler(svc *Service, caps capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		// No revelamos mascotas no listadas a quien no corresponde.
		if !p.Listed() && p.ShelterID != claims.UserID && !canViewAll(r.Context(), caps, claims.Role) {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// moderateHandler godoc
// @Summary Aprobar o rechazar un listado
// @Description Solo admin. Es idempotente.
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /api/pets/{petID}/approve [post]
// @Router /api/pets/{petID}/reject [post]
func moderateHandler(op func(ctx context.Context, id int64) (Pet, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		p, err := op(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func listMyPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.ListByShelter(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func canViewAll(ctx context.Context, caps capabilities.CapabilitiesResolver, role auth.Role) bool {
	ok, err := caps.Can(ctx, capabilities.CapabilityCheck{Role: role, Capability: capabilities.ViewAllPets})
	return err == nil && ok
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		ShelterID:   p.ShelterID,
		Name:        p.Name,
		Type:        p.Type,
		Breed:       p.Breed,
		Age:         p.Age,
		Description: p.Description,
		Status:      p.Status,
		Approval:    p.Approval,
		CreatedAt:   p.CreatedAt,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (pets/applications/...)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
