package roles_test

import (
	"context"
	"testing"

	"pet-adoption/internal/adapters/capabilities/roles"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/ports/capabilities"

	"github.com/stretchr/testify/require"
)

func TestResolver_Table(t *testing.T) {
	r := roles.NewResolver()
	ctx := context.Background()

	cases := []struct {
		role auth.Role
		cap  capabilities.Capability
		want bool
	}{
		{auth.RoleAdmin, capabilities.ModeratePets, true},
		{auth.RoleAdmin, capabilities.ListPet, false},
		{auth.RoleAdmin, capabilities.SubmitApplication, false},
		{auth.RoleShelter, capabilities.ListPet, true},
		{auth.RoleShelter, capabilities.ReviewApplication, true},
		{auth.RoleShelter, capabilities.ManageUsers, false},
		{auth.RoleAdopter, capabilities.SubmitApplication, true},
		{auth.RoleAdopter, capabilities.ViewStats, false},
		{auth.RoleAdopter, capabilities.SendMessages, true},
	}
	for _, tc := range cases {
		got, err := r.Can(ctx, capabilities.CapabilityCheck{Role: tc.role, Capability: tc.cap})
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s/%s", tc.role, tc.cap)
	}
}

func TestResolver_UnknownRole(t *testing.T) {
	_, err := roles.NewResolver().Can(context.Background(), capabilities.CapabilityCheck{
		Role:       auth.Role("vet"),
		Capability: capabilities.BrowsePets,
	})
	require.ErrorIs(t, err, roles.ErrUnknownRole)
}
