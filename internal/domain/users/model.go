package users

import (
	"time"

	"pet-adoption/internal/ports/auth"
)

// User es una cuenta de la plataforma. El password se guarda tal cual se
// registró; el login compara en memoria.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	Role      auth.Role
	CreatedAt time.Time
}
