package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const doctorCols = `doctor_id, name, specialty, phone, email, consultation_fee,
	available_from, available_to, working_days`

func (r *repoPG) FindIDByName(ctx context.Context, name string) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx, `SELECT doctor_id FROM doctors WHERE name = $1`, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("find doctor by name: %w", err)
	}
	return id, nil
}

func (r *repoPG) ListSpecialties(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT specialty FROM doctors`)
	if err != nil {
		return nil, fmt.Errorf("list specialties: %w", err)
	}
	defer rows.Close()

	specialties := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan specialty: %w", err)
		}
		specialties = append(specialties, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate specialties: %w", err)
	}
	return specialties, nil
}

func (r *repoPG) ListBySpecialty(ctx context.Context, specialty string) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE specialty = $1`, specialty)
	if err != nil {
		return nil, fmt.Errorf("list doctors by specialty: %w", err)
	}
	defer rows.Close()

	doctors := []*Doctor{}
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.Phone, &d.Email,
			&d.ConsultationFee, &d.AvailableFrom, &d.AvailableTo, &d.WorkingDays); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate doctors: %w", err)
	}
	return doctors, nil
}
