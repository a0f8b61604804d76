package capabilities

import (
	"context"

	"pet-adoption/internal/ports/auth"
)

// Capability es una acción que un rol puede o no ejecutar.
type Capability string

const (
	BrowsePets        Capability = "pets.browse"
	ListPet           Capability = "pets.list"
	ModeratePets      Capability = "pets.moderate"
	ViewAllPets       Capability = "pets.view_all"
	SubmitApplication Capability = "applications.submit"
	ReviewApplication Capability = "applications.review"
	ViewAllApps       Capability = "applications.view_all"
	ManageUsers       Capability = "users.manage"
	SendMessages      Capability = "messages.send"
	ViewStats         Capability = "stats.view"
)

type CapabilityCheck struct {
	Role       auth.Role
	Capability Capability
}

type CapabilitiesResolver interface {
	Can(ctx context.Context, in CapabilityCheck) (bool, error)
}
