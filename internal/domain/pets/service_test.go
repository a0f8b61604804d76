package pets

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	nextID  int64
	byID    map[int64]Pet
	updates int
}

func newTestRepo(seed ...Pet) *testRepo {
	r := &testRepo{nextID: 1, byID: map[int64]Pet{}}
	for _, p := range seed {
		r.byID[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *testRepo) Create(_ context.Context, p Pet) (Pet, error) {
	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Update(_ context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.updates++
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(_ context.Context, f Filter) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func seedPets() []Pet {
	return []Pet{
		{ID: 1, ShelterID: 2, Name: "Max", Type: "Dog", Breed: "Golden Retriever", Age: 3, Status: StatusAvailable, Approval: ApprovalApproved},
		{ID: 2, ShelterID: 2, Name: "Luna", Type: "Cat", Breed: "Siamese", Age: 2, Status: StatusAvailable, Approval: ApprovalApproved},
		{ID: 3, ShelterID: 2, Name: "Buddy", Type: "Dog", Breed: "Labrador", Age: 4, Status: StatusAvailable, Approval: ApprovalPending},
		{ID: 4, ShelterID: 5, Name: "Rex", Type: "Dog", Breed: "Beagle", Age: 1, Status: StatusAdopted, Approval: ApprovalApproved},
	}
}

func names(items []Pet) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func newSvc(seed ...Pet) (*Service, *testRepo) {
	repo := newTestRepo(seed...)
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestCreate_PendingAndAvailable(t *testing.T) {
	svc, _ := newSvc(seedPets()...)

	p, err := svc.Create(context.Background(), 2, CreateInput{
		Name: " Rocky ", Type: "Dog", Breed: "Boxer", Age: 0, Description: "Shy",
	})
	require.NoError(t, err)

	want := Pet{
		ID: 5, ShelterID: 2, Name: "Rocky", Type: "Dog", Breed: "Boxer", Age: 0, Description: "Shy",
		Status: StatusAvailable, Approval: ApprovalPending,
		CreatedAt: time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("created pet mismatch (-want +got):\n%s", diff)
	}
	require.False(t, p.Listed())
}

func TestCreate_PresenceChecks(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()

	cases := map[string]CreateInput{
		"no name":      {Type: "Dog", Breed: "Lab"},
		"no type":      {Name: "A", Breed: "Lab"},
		"no breed":     {Name: "A", Type: "Dog"},
		"negative age": {Name: "A", Type: "Dog", Breed: "Lab", Age: -1},
	}
	for name, in := range cases {
		_, err := svc.Create(ctx, 2, in)
		require.ErrorIs(t, err, ErrInvalidInput, name)
	}

	_, err := svc.Create(ctx, 0, CreateInput{Name: "A", Type: "Dog", Breed: "Lab"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestListViews(t *testing.T) {
	svc, _ := newSvc(seedPets()...)
	ctx := context.Background()

	available, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Max", "Luna"}, names(available))

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Buddy"}, names(pending))

	mine, err := svc.ListByShelter(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"Max", "Luna", "Buddy"}, names(mine))

	adopted, err := svc.ListFiltered(ctx, "Adopted")
	require.NoError(t, err)
	require.Equal(t, []string{"Rex"}, names(adopted))

	approved, err := svc.ListFiltered(ctx, "approved")
	require.NoError(t, err)
	require.Equal(t, []string{"Max", "Luna", "Rex"}, names(approved))

	all, err := svc.ListFiltered(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 4)

	_, err = svc.ListFiltered(ctx, "sleeping")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearch(t *testing.T) {
	svc, _ := newSvc(seedPets()...)
	ctx := context.Background()

	cases := []struct {
		petType, breed string
		want           []string
	}{
		{"", "", []string{"Max", "Luna"}},
		{"dog", "", []string{"Max"}},
		{"DO", "", []string{"Max"}},
		{"", "siam", []string{"Luna"}},
		{"dog", "lab", []string{}},
		{"cat", "golden", []string{}},
		{" dog ", "", []string{"Max"}},
		{"   ", "\t", []string{"Max", "Luna"}},
	}
	for _, tc := range cases {
		got, err := svc.Search(ctx, tc.petType, tc.breed)
		require.NoError(t, err)
		require.Equal(t, tc.want, names(got), "type=%q breed=%q", tc.petType, tc.breed)
	}
}

func TestApproveReject_Idempotent(t *testing.T) {
	svc, repo := newSvc(seedPets()...)
	ctx := context.Background()

	p, err := svc.Approve(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, ApprovalApproved, p.Approval)
	require.True(t, p.Listed())

	_, err = svc.Approve(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 1, repo.updates)

	p, err = svc.Reject(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, ApprovalRejected, p.Approval)

	_, err = svc.Approve(ctx, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMarkAdopted(t *testing.T) {
	svc, _ := newSvc(seedPets()...)
	ctx := context.Background()

	p, err := svc.MarkAdopted(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, StatusAdopted, p.Status)

	available, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Luna"}, names(available))

	shelterID, err := svc.ShelterOf(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), shelterID)
}
