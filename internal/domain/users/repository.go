package users

import "context"

type Repository interface {
	// Create asigna el ID y devuelve el usuario guardado.
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) error
	GetByID(ctx context.Context, id int64) (User, error)
	// List devuelve todos los usuarios ordenados por ID.
	List(ctx context.Context) ([]User, error)
}
