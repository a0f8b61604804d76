package auth

import "time"

// Role es el rol de un usuario de la plataforma.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleShelter Role = "shelter"
	RoleAdopter Role = "adopter"
)

// Valid indica si el rol es uno de los tres conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleShelter, RoleAdopter:
		return true
	}
	return false
}

// Claims representa la información extraída del token de sesión.
type Claims struct {
	UserID    int64
	Email     string
	Role      Role
	ExpiresAt time.Time
}
