package applications

//go:generate mockgen -package mockapplications -source=interface.go -destination=mock/mockapplications.go *

import (
	"context"

	"pet-adoption/internal/domain/pets"
)

// PetDirectory es lo que applications necesita de pets (lo implementa *pets.Service).
type PetDirectory interface {
	GetByID(ctx context.Context, id int64) (pets.Pet, error)
	ListByShelter(ctx context.Context, shelterID int64) ([]pets.Pet, error)
	ShelterOf(ctx context.Context, petID int64) (int64, error)
	MarkAdopted(ctx context.Context, id int64) (pets.Pet, error)
}
