package roles

import (
	"context"
	"errors"
	"strings"

	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/ports/capabilities"
)

var ErrUnknownRole = errors.New("unknown role")

// Resolver decide capabilities con una tabla estática por rol.
type Resolver struct {
	table map[auth.Role]map[capabilities.Capability]bool
}

func set(caps ...capabilities.Capability) map[capabilities.Capability]bool {
	m := make(map[capabilities.Capability]bool, len(caps))
	for _, c := range caps {
		m[c] = true
	}
	return m
}

// NewResolver arma la tabla por defecto de la plataforma.
func NewResolver() *Resolver {
	return &Resolver{
		table: map[auth.Role]map[capabilities.Capability]bool{
			auth.RoleAdmin: set(
				capabilities.BrowsePets,
				capabilities.ModeratePets,
				capabilities.ViewAllPets,
				capabilities.ReviewApplication,
				capabilities.ViewAllApps,
				capabilities.ManageUsers,
				capabilities.SendMessages,
				capabilities.ViewStats,
			),
			auth.RoleShelter: set(
				capabilities.BrowsePets,
				capabilities.ListPet,
				capabilities.ReviewApplication,
				capabilities.SendMessages,
				capabilities.ViewStats,
			),
			auth.RoleAdopter: set(
				capabilities.BrowsePets,
				capabilities.SubmitApplication,
				capabilities.SendMessages,
			),
		},
	}
}

func (r *Resolver) Can(_ context.Context, in capabilities.CapabilityCheck) (bool, error) {
	if strings.TrimSpace(string(in.Capability)) == "" {
		return false, errors.New("capability required")
	}
	caps, ok := r.table[in.Role]
	if !ok {
		return false, ErrUnknownRole
	}
	return caps[in.Capability], nil
}
