package applications

import "time"

// Status de una solicitud de adopción.
// @Enum submitted, approved, rejected, adopted
type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusAdopted   Status = "adopted"
)

// Reviewable: estados a los que un refugio o admin puede mover una solicitud.
func (s Status) Reviewable() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusAdopted:
		return true
	}
	return false
}

type Application struct {
	ID          int64
	AdopterID   int64
	PetID       int64
	Status      Status
	Notes       string
	SubmittedAt time.Time
}
