package pets

import "context"

// ShelterOf expone el refugio dueño de una mascota.
// Se usa para evitar ciclos de imports entre módulos (pets <-> applications).
func (s *Service) ShelterOf(ctx context.Context, petID int64) (int64, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return 0, err
	}
	return p.ShelterID, nil
}
