package appointment

import "context"

// Service is the appointment ledger: inserts and filtered searches. No
// conflict detection happens here; double-booking a slot is permitted.
type Service struct {
	appointments Repository
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments}
}

func (s *Service) Insert(ctx context.Context, a *Appointment) error {
	return s.appointments.Insert(ctx, a)
}

func (s *Service) Search(ctx context.Context, crit Criteria) ([]*View, error) {
	return s.appointments.Search(ctx, crit)
}
