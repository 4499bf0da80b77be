package patient

import "context"

// Service is the patient registry. Lookups and creation are deliberately
// separate calls: the find-or-create sequence is owned by the booking
// workflow, not the registry.
type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) Find(ctx context.Context, name, phone string) (*Patient, error) {
	return s.patients.Find(ctx, name, phone)
}

func (s *Service) Register(ctx context.Context, p *Patient) error {
	return s.patients.Create(ctx, p)
}
