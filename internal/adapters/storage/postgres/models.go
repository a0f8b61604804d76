package postgres

import (
	"time"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/messages"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/ports/auth"
)

const (
	usersTable        = "users"
	petsTable         = "pets"
	applicationsTable = "applications"
	messagesTable     = "messages"
)

type pgUser struct {
	ID        int64     `db:"id"         goqu:"skipinsert"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

func (u pgUser) toDomain() users.User {
	return users.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Role:      auth.Role(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func pgUserFromDomain(u users.User) pgUser {
	return pgUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type pgPet struct {
	ID          int64     `db:"id"          goqu:"skipinsert"`
	ShelterID   int64     `db:"shelter_id"`
	Name        string    `db:"name"`
	Type        string    `db:"type"`
	Breed       string    `db:"breed"`
	Age         int       `db:"age"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	Approval    string    `db:"approval"`
	CreatedAt   time.Time `db:"created_at"`
}

func (p pgPet) toDomain() pets.Pet {
	return pets.Pet{
		ID:          p.ID,
		ShelterID:   p.ShelterID,
		Name:        p.Name,
		Type:        p.Type,
		Breed:       p.Breed,
		Age:         p.Age,
		Description: p.Description,
		Status:      pets.Status(p.Status),
		Approval:    pets.Approval(p.Approval),
		CreatedAt:   p.CreatedAt,
	}
}

func pgPetFromDomain(p pets.Pet) pgPet {
	return pgPet{
		ID:          p.ID,
		ShelterID:   p.ShelterID,
		Name:        p.Name,
		Type:        p.Type,
		Breed:       p.Breed,
		Age:         p.Age,
		Description: p.Description,
		Status:      string(p.Status),
		Approval:    string(p.Approval),
		CreatedAt:   p.CreatedAt,
	}
}

type pgApplication struct {
	ID          int64     `db:"id"           goqu:"skipinsert"`
	AdopterID   int64     `db:"adopter_id"`
	PetID       int64     `db:"pet_id"`
	Status      string    `db:"status"`
	Notes       string    `db:"notes"`
	SubmittedAt time.Time `db:"submitted_at"`
}

func (a pgApplication) toDomain() applications.Application {
	return applications.Application{
		ID:          a.ID,
		AdopterID:   a.AdopterID,
		PetID:       a.PetID,
		Status:      applications.Status(a.Status),
		Notes:       a.Notes,
		SubmittedAt: a.SubmittedAt,
	}
}

func pgApplicationFromDomain(a applications.Application) pgApplication {
	return pgApplication{
		ID:          a.ID,
		AdopterID:   a.AdopterID,
		PetID:       a.PetID,
		Status:      string(a.Status),
		Notes:       a.Notes,
		SubmittedAt: a.SubmittedAt,
	}
}

type pgMessage struct {
	ID          int64     `db:"id"           goqu:"skipinsert"`
	SenderID    int64     `db:"sender_id"`
	RecipientID int64     `db:"recipient_id"`
	Content     string    `db:"content"`
	SentAt      time.Time `db:"sent_at"`
}

func (m pgMessage) toDomain() messages.Message {
	return messages.Message{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		SentAt:      m.SentAt,
	}
}
