package postgres

import (
	"context"
	"fmt"

	"pet-adoption/internal/domain/users"

	"github.com/doug-martin/goqu/v9"
)

type UsersRepo struct {
	db *DB
}

func NewUsersRepo(db *DB) *UsersRepo {
	return &UsersRepo{db: db}
}

var _ users.Repository = (*UsersRepo)(nil)

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	var row pgUser
	if _, err := r.db.Builder.Insert(usersTable).
		Rows(pgUserFromDomain(u)).
		Returning(&pgUser{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return users.User{}, fmt.Errorf("could not insert user: %w", err)
	}
	return row.toDomain(), nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.Builder.Update(usersTable).
		Set(goqu.Record{
			"name":     u.Name,
			"email":    u.Email,
			"password": u.Password,
			"role":     string(u.Role),
		}).
		Where(goqu.C("id").Eq(u.ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	var row pgUser
	found, err := r.db.Builder.From(usersTable).
		Where(goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return users.User{}, fmt.Errorf("could not get user: %w", err)
	}
	if !found {
		return users.User{}, users.ErrNotFound
	}
	return row.toDomain(), nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	var rows []pgUser
	if err := r.db.Builder.From(usersTable).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	out := make([]users.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
