package postgres

import (
	"context"
	"fmt"

	"pet-adoption/internal/domain/applications"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

type ApplicationsRepo struct {
	db *DB
}

func NewApplicationsRepo(db *DB) *ApplicationsRepo {
	return &ApplicationsRepo{db: db}
}

var _ applications.Repository = (*ApplicationsRepo)(nil)

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) (applications.Application, error) {
	var row pgApplication
	if _, err := r.db.Builder.Insert(applicationsTable).
		Rows(pgApplicationFromDomain(a)).
		Returning(&pgApplication{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return applications.Application{}, fmt.Errorf("could not insert application: %w", err)
	}
	return row.toDomain(), nil
}

func (r *ApplicationsRepo) Update(ctx context.Context, a applications.Application) error {
	res, err := r.db.Builder.Update(applicationsTable).
		Set(goqu.Record{
			"status": string(a.Status),
			"notes":  a.Notes,
		}).
		Where(goqu.C("id").Eq(a.ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update application: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return applications.ErrNotFound
	}
	return nil
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, id int64) (applications.Application, error) {
	var row pgApplication
	found, err := r.db.Builder.From(applicationsTable).
		Where(goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return applications.Application{}, fmt.Errorf("could not get application: %w", err)
	}
	if !found {
		return applications.Application{}, applications.ErrNotFound
	}
	return row.toDomain(), nil
}

func (r *ApplicationsRepo) List(ctx context.Context, f applications.Filter) ([]applications.Application, error) {
	if f.PetIDs != nil && len(f.PetIDs) == 0 {
		return []applications.Application{}, nil
	}

	w := make([]exp.Expression, 0, 2)
	if f.AdopterID != 0 {
		w = append(w, goqu.C("adopter_id").Eq(f.AdopterID))
	}
	if f.PetIDs != nil {
		w = append(w, goqu.C("pet_id").In(f.PetIDs))
	}

	var rows []pgApplication
	if err := r.db.Builder.From(applicationsTable).
		Where(w...).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list applications: %w", err)
	}

	out := make([]applications.Application, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
