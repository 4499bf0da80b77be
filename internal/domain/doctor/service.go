package doctor

import "context"

// Service is the doctor directory: read-only lookups over the pre-seeded
// doctor roster.
type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

func (s *Service) FindIDByName(ctx context.Context, name string) (int, error) {
	return s.doctors.FindIDByName(ctx, name)
}

func (s *Service) ListSpecialties(ctx context.Context) ([]string, error) {
	return s.doctors.ListSpecialties(ctx)
}

func (s *Service) ListBySpecialty(ctx context.Context, specialty string) ([]*Doctor, error) {
	return s.doctors.ListBySpecialty(ctx, specialty)
}
