package doctor

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no doctor matches a name lookup.
var ErrNotFound = errors.New("doctor not found")

type Repository interface {
	// FindIDByName performs an exact match on the doctor's name.
	FindIDByName(ctx context.Context, name string) (int, error)
	// ListSpecialties returns the distinct specialties across all doctors.
	// An empty table yields an empty slice, not an error.
	ListSpecialties(ctx context.Context) ([]string, error)
	// ListBySpecialty matches the specialty field with case-sensitive
	// equality. Unlike the appointment search on patient names, this is
	// intentionally not normalized.
	ListBySpecialty(ctx context.Context, specialty string) ([]*Doctor, error)
}
