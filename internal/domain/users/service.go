package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/ports/auth"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrRoleNotAllowed     = errors.New("role not allowed")
)

type Service struct {
	repo    Repository
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		metrics: m,
		now:     time.Now,
	}
}

// Authenticate devuelve el primer usuario (por ID) con email y password exactos.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range all {
		if u.Email == email && u.Password == password {
			s.metrics.Login(true)
			return u, nil
		}
	}
	s.metrics.Login(false)
	return User{}, ErrInvalidCredentials
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     auth.Role
}

// Register crea un adopter o shelter. Rol vacío => adopter.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}

	role := auth.Role(strings.ToLower(strings.TrimSpace(string(in.Role))))
	if role == "" {
		role = auth.RoleAdopter
	}
	if role != auth.RoleAdopter && role != auth.RoleShelter {
		return User{}, ErrRoleNotAllowed
	}

	return s.repo.Create(ctx, User{
		Name:      name,
		Email:     email,
		Password:  in.Password,
		Role:      role,
		CreatedAt: s.now(),
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// NameOf devuelve el nombre o "Unknown" si el usuario no existe.
// Lo usan las vistas para no romper con referencias colgadas.
func (s *Service) NameOf(ctx context.Context, id int64) string {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "Unknown"
	}
	return u.Name
}

// RoleOf devuelve el rol guardado; AuthContext lo usa para refrescar las claims.
func (s *Service) RoleOf(ctx context.Context, id int64) (auth.Role, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (s *Service) UpdateRole(ctx context.Context, id int64, role auth.Role) (User, error) {
	role = auth.Role(strings.ToLower(strings.TrimSpace(string(role))))
	if !role.Valid() {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	u.Role = role
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

type ProfileInput struct {
	// Vacío = no tocar.
	Name  string
	Email string
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, in ProfileInput) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if v := strings.TrimSpace(in.Name); v != "" {
		u.Name = v
	}
	if v := strings.TrimSpace(in.Email); v != "" {
		u.Email = v
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) ChangePassword(ctx context.Context, id int64, current, next string) error {
	if next == "" {
		return ErrInvalidInput
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Password != current {
		return ErrWrongPassword
	}

	u.Password = next
	return s.repo.Update(ctx, u)
}

func (s *Service) Exists(ctx context.Context, id int64) bool {
	_, err := s.repo.GetByID(ctx, id)
	return err == nil
}
