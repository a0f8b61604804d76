package applications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/ports/auth"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("application not found")
	ErrPetNotFound    = errors.New("pet not found")
	ErrPetUnavailable = errors.New("pet is not available for adoption")
	ErrForbidden      = errors.New("forbidden")
)

type Service struct {
	repo    Repository
	pets    PetDirectory
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, petDir PetDirectory, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		pets:    petDir,
		metrics: m,
		now:     time.Now,
	}
}

// Submit crea una solicitud "submitted". La mascota tiene que estar listada
// (available + approved) y las notas no pueden venir vacías.
func (s *Service) Submit(ctx context.Context, adopterID, petID int64, notes string) (Application, error) {
	notes = strings.TrimSpace(notes)
	if adopterID <= 0 || notes == "" {
		return Application{}, ErrInvalidInput
	}

	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return Application{}, ErrPetNotFound
		}
		return Application{}, fmt.Errorf("lookup pet: %w", err)
	}
	if !p.Listed() {
		return Application{}, ErrPetUnavailable
	}

	a, err := s.repo.Create(ctx, Application{
		AdopterID:   adopterID,
		PetID:       petID,
		Status:      StatusSubmitted,
		Notes:       notes,
		SubmittedAt: s.now(),
	})
	if err != nil {
		return Application{}, err
	}
	s.metrics.ApplicationSubmitted()
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Application, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Application, error) {
	return s.repo.List(ctx, Filter{})
}

func (s *Service) ListByAdopter(ctx context.Context, adopterID int64) ([]Application, error) {
	return s.repo.List(ctx, Filter{AdopterID: adopterID})
}

// ListForShelter: solicitudes cuyas mascotas pertenecen al refugio.
func (s *Service) ListForShelter(ctx context.Context, shelterID int64) ([]Application, error) {
	owned, err := s.pets.ListByShelter(ctx, shelterID)
	if err != nil {
		return nil, fmt.Errorf("list shelter pets: %w", err)
	}
	if len(owned) == 0 {
		return []Application{}, nil
	}

	ids := make([]int64, 0, len(owned))
	for _, p := range owned {
		ids = append(ids, p.ID)
	}
	return s.repo.List(ctx, Filter{PetIDs: ids})
}

// ListFor devuelve las solicitudes propias del actor: las de sus mascotas si es
// refugio, las enviadas si es adoptante. Ver todas pasa por List.
func (s *Service) ListFor(ctx context.Context, actor auth.Claims) ([]Application, error) {
	switch actor.Role {
	case auth.RoleShelter:
		return s.ListForShelter(ctx, actor.UserID)
	case auth.RoleAdopter:
		return s.ListByAdopter(ctx, actor.UserID)
	default:
		return nil, ErrForbidden
	}
}

// UpdateStatus mueve la solicitud a approved / rejected / adopted.
// Solo admin o el refugio dueño de la mascota; adopted marca la mascota.
func (s *Service) UpdateStatus(ctx context.Context, appID int64, status Status, actor auth.Claims) (Application, error) {
	status = Status(strings.ToLower(strings.TrimSpace(string(status))))
	if !status.Reviewable() {
		return Application{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, appID)
	if err != nil {
		return Application{}, err
	}

	if actor.Role != auth.RoleAdmin {
		if actor.Role != auth.RoleShelter {
			return Application{}, ErrForbidden
		}
		owner, err := s.pets.ShelterOf(ctx, a.PetID)
		if err != nil || owner != actor.UserID {
			return Application{}, ErrForbidden
		}
	}

	// La mascota se marca antes de tocar la solicitud: si falla, nada cambia.
	// Mascota colgada: la solicitud igual queda adopted.
	if status == StatusAdopted {
		if _, err := s.pets.MarkAdopted(ctx, a.PetID); err != nil && !errors.Is(err, pets.ErrNotFound) {
			return Application{}, fmt.Errorf("mark pet adopted: %w", err)
		}
	}

	a.Status = status
	if err := s.repo.Update(ctx, a); err != nil {
		return Application{}, err
	}

	s.metrics.ApplicationStatusChanged(string(status))
	return a, nil
}
