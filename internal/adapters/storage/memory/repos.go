package memory

import (
	"time"

	"pet-adoption/internal/adapters/storage/seed"
	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/messages"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"
)

// Repos agrupa los repos in-memory que usa el router.
type Repos struct {
	Users        users.Repository
	Pets         pets.Repository
	Applications applications.Repository
	Messages     messages.Repository
}

func NewRepos() Repos {
	return Repos{
		Users:        NewUserRepo(),
		Pets:         NewPetRepo(),
		Applications: NewApplicationRepo(),
		Messages:     NewMessageRepo(),
	}
}

// NewSeededRepos carga los datos de demo; los contadores quedan en el
// siguiente ID libre (user 5, pet 4, application 3, message 1).
func NewSeededRepos(now time.Time) Repos {
	userRepo := &userRepo{nextID: 1, byID: make(map[int64]users.User)}
	for _, u := range seed.Users(now) {
		userRepo.put(u)
	}

	petRepo := &petRepo{nextID: 1, byID: make(map[int64]pets.Pet)}
	for _, p := range seed.Pets(now) {
		petRepo.put(p)
	}

	appRepo := &applicationRepo{nextID: 1, byID: make(map[int64]applications.Application)}
	for _, a := range seed.Applications(now) {
		appRepo.put(a)
	}

	return Repos{
		Users:        userRepo,
		Pets:         petRepo,
		Applications: appRepo,
		Messages:     NewMessageRepo(),
	}
}
