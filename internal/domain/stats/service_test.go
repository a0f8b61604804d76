package stats_test

import (
	"context"
	"testing"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/stats"
	"pet-adoption/internal/domain/users"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type fakeUsers []users.User

func (f fakeUsers) List(context.Context) ([]users.User, error) { return f, nil }

type fakePets []pets.Pet

func (f fakePets) List(context.Context) ([]pets.Pet, error) { return f, nil }

func (f fakePets) ListByShelter(_ context.Context, shelterID int64) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for _, p := range f {
		if p.ShelterID == shelterID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeApps struct {
	all  []applications.Application
	pets fakePets
}

func (f fakeApps) List(context.Context) ([]applications.Application, error) { return f.all, nil }

func (f fakeApps) ListForShelter(ctx context.Context, shelterID int64) ([]applications.Application, error) {
	owned, _ := f.pets.ListByShelter(ctx, shelterID)
	out := make([]applications.Application, 0)
	for _, a := range f.all {
		for _, p := range owned {
			if p.ID == a.PetID {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func fixture() *stats.Service {
	us := fakeUsers{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	ps := fakePets{
		{ID: 1, ShelterID: 2, Status: pets.StatusAvailable, Approval: pets.ApprovalApproved},
		{ID: 2, ShelterID: 2, Status: pets.StatusAdopted, Approval: pets.ApprovalApproved},
		{ID: 3, ShelterID: 2, Status: pets.StatusAvailable, Approval: pets.ApprovalPending},
		{ID: 4, ShelterID: 5, Status: pets.StatusAvailable, Approval: pets.ApprovalRejected},
	}
	as := fakeApps{pets: ps, all: []applications.Application{
		{ID: 1, PetID: 1, Status: applications.StatusSubmitted},
		{ID: 2, PetID: 2, Status: applications.StatusAdopted},
		{ID: 3, PetID: 4, Status: applications.StatusApproved},
	}}
	return stats.NewService(us, ps, as)
}

func TestPlatform(t *testing.T) {
	got, err := fixture().Platform(context.Background())
	require.NoError(t, err)

	want := stats.Platform{
		TotalUsers:           4,
		TotalPets:            4,
		PendingPets:          1,
		TotalApplications:    3,
		AdoptedPets:          1,
		AvailablePets:        3,
		ApprovedApplications: 1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("platform stats mismatch (-want +got):\n%s", diff)
	}
}

func TestShelter(t *testing.T) {
	got, err := fixture().Shelter(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, stats.Shelter{TotalPets: 3, AdoptedPets: 1, ApplicationsReceived: 2}, got)

	empty, err := fixture().Shelter(context.Background(), 99)
	require.NoError(t, err)
	require.Equal(t, stats.Shelter{}, empty)
}
