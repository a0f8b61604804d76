package stats

import (
	"context"
	"fmt"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"
)

type UserLister interface {
	List(ctx context.Context) ([]users.User, error)
}

type PetLister interface {
	List(ctx context.Context) ([]pets.Pet, error)
	ListByShelter(ctx context.Context, shelterID int64) ([]pets.Pet, error)
}

type ApplicationLister interface {
	List(ctx context.Context) ([]applications.Application, error)
	ListForShelter(ctx context.Context, shelterID int64) ([]applications.Application, error)
}

// Platform son los números del panel de admin.
type Platform struct {
	TotalUsers           int `json:"total_users"`
	TotalPets            int `json:"total_pets"`
	PendingPets          int `json:"pending_pets"`
	TotalApplications    int `json:"total_applications"`
	AdoptedPets          int `json:"adopted_pets"`
	AvailablePets        int `json:"available_pets"`
	ApprovedApplications int `json:"approved_applications"`
}

// Shelter son los números del panel de un refugio.
type Shelter struct {
	TotalPets            int `json:"total_pets"`
	AdoptedPets          int `json:"adopted_pets"`
	ApplicationsReceived int `json:"applications_received"`
}

type Service struct {
	users UserLister
	pets  PetLister
	apps  ApplicationLister
}

func NewService(u UserLister, p PetLister, a ApplicationLister) *Service {
	return &Service{users: u, pets: p, apps: a}
}

func (s *Service) Platform(ctx context.Context) (Platform, error) {
	us, err := s.users.List(ctx)
	if err != nil {
		return Platform{}, fmt.Errorf("list users: %w", err)
	}
	ps, err := s.pets.List(ctx)
	if err != nil {
		return Platform{}, fmt.Errorf("list pets: %w", err)
	}
	as, err := s.apps.List(ctx)
	if err != nil {
		return Platform{}, fmt.Errorf("list applications: %w", err)
	}

	out := Platform{
		TotalUsers:        len(us),
		TotalPets:         len(ps),
		TotalApplications: len(as),
	}
	for _, p := range ps {
		if p.Approval == pets.ApprovalPending {
			out.PendingPets++
		}
		// available cuenta por status, sin mirar la moderación
		switch p.Status {
		case pets.StatusAdopted:
			out.AdoptedPets++
		case pets.StatusAvailable:
			out.AvailablePets++
		}
	}
	for _, a := range as {
		if a.Status == applications.StatusApproved {
			out.ApprovedApplications++
		}
	}
	return out, nil
}

func (s *Service) Shelter(ctx context.Context, shelterID int64) (Shelter, error) {
	ps, err := s.pets.ListByShelter(ctx, shelterID)
	if err != nil {
		return Shelter{}, fmt.Errorf("list shelter pets: %w", err)
	}
	as, err := s.apps.ListForShelter(ctx, shelterID)
	if err != nil {
		return Shelter{}, fmt.Errorf("list shelter applications: %w", err)
	}

	out := Shelter{TotalPets: len(ps), ApplicationsReceived: len(as)}
	for _, p := range ps {
		if p.Status == pets.StatusAdopted {
			out.AdoptedPets++
		}
	}
	return out, nil
}
