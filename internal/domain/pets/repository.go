package pets

import "context"

// Filter: campos vacíos / cero no filtran.
type Filter struct {
	ShelterID int64
	Status    Status
	Approval  Approval
}

func (f Filter) Match(p Pet) bool {
	if f.ShelterID != 0 && p.ShelterID != f.ShelterID {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Approval != "" && p.Approval != f.Approval {
		return false
	}
	return true
}

type Repository interface {
	// Create asigna el ID y devuelve la mascota guardada.
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id int64) (Pet, error)
	// List devuelve las mascotas que cumplen el filtro, ordenadas por ID.
	List(ctx context.Context, f Filter) ([]Pet, error)
}
