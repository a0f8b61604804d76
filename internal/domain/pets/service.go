package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/platform/metrics"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo    Repository
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		metrics: m,
		now:     time.Now,
	}
}

type CreateInput struct {
	Name        string
	Type        string
	Breed       string
	Age         int
	Description string
}

// Create publica una mascota del refugio: queda available + pending hasta que
// un admin la apruebe.
func (s *Service) Create(ctx context.Context, shelterID int64, in CreateInput) (Pet, error) {
	if shelterID <= 0 {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Type) == "" || strings.TrimSpace(in.Breed) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.repo.Create(ctx, Pet{
		ShelterID:   shelterID,
		Name:        strings.TrimSpace(in.Name),
		Type:        strings.TrimSpace(in.Type),
		Breed:       strings.TrimSpace(in.Breed),
		Age:         in.Age,
		Description: strings.TrimSpace(in.Description),
		Status:      StatusAvailable,
		Approval:    ApprovalPending,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return Pet{}, err
	}
	s.metrics.PetListed()
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx, Filter{})
}

func (s *Service) ListPending(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx, Filter{Approval: ApprovalPending})
}

func (s *Service) ListByShelter(ctx context.Context, shelterID int64) ([]Pet, error) {
	return s.repo.List(ctx, Filter{ShelterID: shelterID})
}

func (s *Service) ListAvailable(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx, Filter{Status: StatusAvailable, Approval: ApprovalApproved})
}

// ListFiltered aplica los filtros con nombre de la API: available (listadas),
// adopted, approved, pending. Vacío => todas.
func (s *Service) ListFiltered(ctx context.Context, name string) ([]Pet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return s.List(ctx)
	case "available":
		return s.ListAvailable(ctx)
	case "adopted":
		return s.repo.List(ctx, Filter{Status: StatusAdopted})
	case "approved":
		return s.repo.List(ctx, Filter{Approval: ApprovalApproved})
	case "pending":
		return s.ListPending(ctx)
	default:
		return nil, ErrInvalidInput
	}
}

// Search busca entre las listadas por substring de type y breed, sin
// distinguir mayúsculas. Criterio vacío matchea todo.
func (s *Service) Search(ctx context.Context, petType, breed string) ([]Pet, error) {
	items, err := s.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	petType = strings.ToLower(strings.TrimSpace(petType))
	breed = strings.ToLower(strings.TrimSpace(breed))

	out := make([]Pet, 0, len(items))
	for _, p := range items {
		if petType != "" && !strings.Contains(strings.ToLower(p.Type), petType) {
			continue
		}
		if breed != "" && !strings.Contains(strings.ToLower(p.Breed), breed) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) Approve(ctx context.Context, id int64) (Pet, error) {
	return s.setApproval(ctx, id, ApprovalApproved)
}

func (s *Service) Reject(ctx context.Context, id int64) (Pet, error) {
	return s.setApproval(ctx, id, ApprovalRejected)
}

func (s *Service) setApproval(ctx context.Context, id int64, a Approval) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if p.Approval == a {
		return p, nil
	}
	p.Approval = a
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	s.metrics.PetModerated(string(a))
	return p, nil
}

func (s *Service) MarkAdopted(ctx context.Context, id int64) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if p.Status == StatusAdopted {
		return p, nil
	}
	p.Status = StatusAdopted
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}
