package pets

import "time"

// Status indica si la mascota sigue disponible.
// @Enum available, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusAdopted   Status = "adopted"
)

// Approval es la moderación del listado por un admin.
// @Enum pending, approved, rejected
type Approval string

const (
	ApprovalPending  Approval = "pending"
	ApprovalApproved Approval = "approved"
	ApprovalRejected Approval = "rejected"
)

// Pet es una mascota publicada por un refugio.
type Pet struct {
	ID        int64
	ShelterID int64

	Name        string
	Type        string // Dog, Cat, ... tal cual lo cargó el refugio
	Breed       string
	Age         int
	Description string

	Status   Status
	Approval Approval

	CreatedAt time.Time
}

// Listed: visible para adoptantes.
func (p Pet) Listed() bool {
	return p.Status == StatusAvailable && p.Approval == ApprovalApproved
}
