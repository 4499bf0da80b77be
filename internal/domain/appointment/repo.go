package appointment

import "context"

type Repository interface {
	// Insert appends a new row and reads back the generated id into a.ID.
	// No duplicate or conflict check is performed.
	Insert(ctx context.Context, a *Appointment) error
	// Search runs a filtered read over the join of appointments, patients
	// and doctors. Results are ordered by appointment id.
	Search(ctx context.Context, crit Criteria) ([]*View, error)
}
