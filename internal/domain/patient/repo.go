package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no patient matches a lookup. It is a normal
// negative result, not a store failure.
var ErrNotFound = errors.New("patient not found")

type Repository interface {
	// Find performs an exact, case-sensitive match on both name and phone.
	Find(ctx context.Context, name, phone string) (*Patient, error)
	// Create inserts a new row. It does not check for an existing match and
	// does not report the generated id; callers re-run Find to obtain it.
	Create(ctx context.Context, p *Patient) error
}
