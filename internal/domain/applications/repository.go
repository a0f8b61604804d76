package applications

import (
	"context"
	"slices"
)

// Filter: AdopterID 0 no filtra; PetIDs nil no filtra (vacío no nil => nada).
type Filter struct {
	AdopterID int64
	PetIDs    []int64
}

func (f Filter) Match(a Application) bool {
	if f.AdopterID != 0 && a.AdopterID != f.AdopterID {
		return false
	}
	if f.PetIDs != nil && !slices.Contains(f.PetIDs, a.PetID) {
		return false
	}
	return true
}

type Repository interface {
	// Create asigna el ID y devuelve la solicitud guardada.
	Create(ctx context.Context, a Application) (Application, error)
	Update(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id int64) (Application, error)
	// List devuelve las solicitudes que cumplen el filtro, ordenadas por ID.
	List(ctx context.Context, f Filter) ([]Application, error)
}
