// Package seed tiene los datos de demo que cargan el storage in-memory al
// arrancar y `migrate --seed` en Postgres.
package seed

import (
	"time"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/ports/auth"
)

func Users(now time.Time) []users.User {
	return []users.User{
		{ID: 1, Name: "Admin User", Email: "admin@petadoption.com", Password: "admin123", Role: auth.RoleAdmin, CreatedAt: now},
		{ID: 2, Name: "Happy Paws Shelter", Email: "shelter@happypaws.com", Password: "shelter123", Role: auth.RoleShelter, CreatedAt: now},
		{ID: 3, Name: "John Adopter", Email: "john@email.com", Password: "john123", Role: auth.RoleAdopter, CreatedAt: now},
		{ID: 4, Name: "Sarah Adopter", Email: "sarah@email.com", Password: "sarah123", Role: auth.RoleAdopter, CreatedAt: now},
	}
}

func Pets(now time.Time) []pets.Pet {
	return []pets.Pet{
		{
			ID: 1, ShelterID: 2, Name: "Max", Type: "Dog", Breed: "Golden Retriever", Age: 3,
			Description: "Friendly and energetic", Status: pets.StatusAvailable, Approval: pets.ApprovalApproved, CreatedAt: now,
		},
		{
			ID: 2, ShelterID: 2, Name: "Luna", Type: "Cat", Breed: "Siamese", Age: 2,
			Description: "Calm and affectionate", Status: pets.StatusAvailable, Approval: pets.ApprovalApproved, CreatedAt: now,
		},
		{
			ID: 3, ShelterID: 2, Name: "Buddy", Type: "Dog", Breed: "Labrador", Age: 4,
			Description: "Loyal and playful", Status: pets.StatusAvailable, Approval: pets.ApprovalPending, CreatedAt: now,
		},
	}
}

func Applications(now time.Time) []applications.Application {
	return []applications.Application{
		{ID: 1, AdopterID: 3, PetID: 1, Status: applications.StatusSubmitted, Notes: "I love dogs and have a large backyard", SubmittedAt: now},
		{ID: 2, AdopterID: 4, PetID: 2, Status: applications.StatusSubmitted, Notes: "Always wanted a cat", SubmittedAt: now},
	}
}
