package postgres

import (
	"context"
	"fmt"
	"time"

	petadoption "pet-adoption"
	"pet-adoption/internal/adapters/storage/seed"

	"github.com/doug-martin/goqu/v9"
	"github.com/pressly/goose/v3"
)

// Migrate aplica las migraciones embebidas hasta la última versión.
func Migrate(ctx context.Context, db *DB) error {
	goose.SetBaseFS(petadoption.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.SQL, "migrations"); err != nil {
		return fmt.Errorf("could not migrate: %w", err)
	}
	return nil
}

// Seed carga los datos de demo con sus IDs fijos. Si ya existen no los toca,
// así se puede correr más de una vez.
func Seed(ctx context.Context, db *DB, now time.Time) error {
	for _, u := range seed.Users(now) {
		row := pgUserFromDomain(u)
		if _, err := db.Builder.Insert(usersTable).Rows(goqu.Record{
			"id": row.ID, "name": row.Name, "email": row.Email, "password": row.Password,
			"role": row.Role, "created_at": row.CreatedAt,
		}).OnConflict(goqu.DoNothing()).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not seed user %d: %w", u.ID, err)
		}
	}

	for _, p := range seed.Pets(now) {
		row := pgPetFromDomain(p)
		if _, err := db.Builder.Insert(petsTable).Rows(goqu.Record{
			"id": row.ID, "shelter_id": row.ShelterID, "name": row.Name, "type": row.Type,
			"breed": row.Breed, "age": row.Age, "description": row.Description,
			"status": row.Status, "approval": row.Approval, "created_at": row.CreatedAt,
		}).OnConflict(goqu.DoNothing()).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not seed pet %d: %w", p.ID, err)
		}
	}

	for _, a := range seed.Applications(now) {
		row := pgApplicationFromDomain(a)
		if _, err := db.Builder.Insert(applicationsTable).Rows(goqu.Record{
			"id": row.ID, "adopter_id": row.AdopterID, "pet_id": row.PetID,
			"status": row.Status, "notes": row.Notes, "submitted_at": row.SubmittedAt,
		}).OnConflict(goqu.DoNothing()).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not seed application %d: %w", a.ID, err)
		}
	}

	// Los inserts con ID explícito no mueven las secuencias.
	for _, table := range []string{usersTable, petsTable, applicationsTable} {
		q := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
			table)
		if _, err := db.SQL.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("could not reset %s sequence: %w", table, err)
		}
	}
	return nil
}
