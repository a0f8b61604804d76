package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/messages"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/ports/auth"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

func setupTestDB(t *testing.T) *postgres.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in -short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, err := postgres.Open(ctx, postgres.Options{
		DSN: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			host, port.Int(), testUser, testPassword, testDB),
		MaxOpenConns: 5,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.Migrate(ctx, db))
	return db
}

func TestRepos_AgainstPostgres(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, postgres.Seed(ctx, db, now))
	// idempotente
	require.NoError(t, postgres.Seed(ctx, db, now))

	usersRepo := postgres.NewUsersRepo(db)
	petsRepo := postgres.NewPetsRepo(db)
	appsRepo := postgres.NewApplicationsRepo(db)
	msgRepo := postgres.NewMessagesRepo(db)

	t.Run("users", func(t *testing.T) {
		all, err := usersRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)

		u, err := usersRepo.Create(ctx, users.User{Name: "New", Email: "new@x.com", Password: "pw", Role: auth.RoleAdopter, CreatedAt: now})
		require.NoError(t, err)
		require.Equal(t, int64(5), u.ID)

		u.Role = auth.RoleShelter
		require.NoError(t, usersRepo.Update(ctx, u))
		got, err := usersRepo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, auth.RoleShelter, got.Role)

		_, err = usersRepo.GetByID(ctx, 999)
		require.ErrorIs(t, err, users.ErrNotFound)
		require.ErrorIs(t, usersRepo.Update(ctx, users.User{ID: 999, Role: auth.RoleAdmin}), users.ErrNotFound)
	})

	t.Run("pets", func(t *testing.T) {
		listed, err := petsRepo.List(ctx, pets.Filter{Status: pets.StatusAvailable, Approval: pets.ApprovalApproved})
		require.NoError(t, err)
		require.Len(t, listed, 2)
		require.Equal(t, "Max", listed[0].Name)

		p, err := petsRepo.Create(ctx, pets.Pet{
			ShelterID: 2, Name: "Rocky", Type: "Dog", Breed: "Boxer", Age: 1,
			Status: pets.StatusAvailable, Approval: pets.ApprovalPending, CreatedAt: now,
		})
		require.NoError(t, err)
		require.Equal(t, int64(4), p.ID)

		p.Approval = pets.ApprovalApproved
		require.NoError(t, petsRepo.Update(ctx, p))

		mine, err := petsRepo.List(ctx, pets.Filter{ShelterID: 2})
		require.NoError(t, err)
		require.Len(t, mine, 4)

		_, err = petsRepo.GetByID(ctx, 999)
		require.ErrorIs(t, err, pets.ErrNotFound)
	})

	t.Run("applications", func(t *testing.T) {
		forPets, err := appsRepo.List(ctx, applications.Filter{PetIDs: []int64{1, 3}})
		require.NoError(t, err)
		require.Len(t, forPets, 1)

		none, err := appsRepo.List(ctx, applications.Filter{PetIDs: []int64{}})
		require.NoError(t, err)
		require.Empty(t, none)

		a, err := appsRepo.Create(ctx, applications.Application{
			AdopterID: 3, PetID: 2, Status: applications.StatusSubmitted, Notes: "me too", SubmittedAt: now,
		})
		require.NoError(t, err)
		require.Equal(t, int64(3), a.ID)

		a.Status = applications.StatusApproved
		require.NoError(t, appsRepo.Update(ctx, a))

		johns, err := appsRepo.List(ctx, applications.Filter{AdopterID: 3})
		require.NoError(t, err)
		require.Len(t, johns, 2)
		require.Equal(t, applications.StatusApproved, johns[1].Status)
	})

	t.Run("messages", func(t *testing.T) {
		_, err := msgRepo.Create(ctx, messages.Message{SenderID: 3, RecipientID: 2, Content: "hi", SentAt: now})
		require.NoError(t, err)
		_, err = msgRepo.Create(ctx, messages.Message{SenderID: 4, RecipientID: 2, Content: "hello", SentAt: now.Add(time.Second)})
		require.NoError(t, err)

		inbox, err := msgRepo.ListByRecipient(ctx, 2)
		require.NoError(t, err)
		require.Len(t, inbox, 2)
		require.Equal(t, "hi", inbox[0].Content)
	})
}
