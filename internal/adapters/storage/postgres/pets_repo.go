package postgres

import (
	"context"
	"fmt"

	"pet-adoption/internal/domain/pets"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

type PetsRepo struct {
	db *DB
}

func NewPetsRepo(db *DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	var row pgPet
	if _, err := r.db.Builder.Insert(petsTable).
		Rows(pgPetFromDomain(p)).
		Returning(&pgPet{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return pets.Pet{}, fmt.Errorf("could not insert pet: %w", err)
	}
	return row.toDomain(), nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.Builder.Update(petsTable).
		Set(goqu.Record{
			"name":        p.Name,
			"type":        p.Type,
			"breed":       p.Breed,
			"age":         p.Age,
			"description": p.Description,
			"status":      string(p.Status),
			"approval":    string(p.Approval),
		}).
		Where(goqu.C("id").Eq(p.ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pet: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	var row pgPet
	found, err := r.db.Builder.From(petsTable).
		Where(goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("could not get pet: %w", err)
	}
	if !found {
		return pets.Pet{}, pets.ErrNotFound
	}
	return row.toDomain(), nil
}

func (r *PetsRepo) List(ctx context.Context, f pets.Filter) ([]pets.Pet, error) {
	w := make([]exp.Expression, 0, 3)
	if f.ShelterID != 0 {
		w = append(w, goqu.C("shelter_id").Eq(f.ShelterID))
	}
	if f.Status != "" {
		w = append(w, goqu.C("status").Eq(string(f.Status)))
	}
	if f.Approval != "" {
		w = append(w, goqu.C("approval").Eq(string(f.Approval)))
	}

	var rows []pgPet
	if err := r.db.Builder.From(petsTable).
		Where(w...).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list pets: %w", err)
	}

	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
