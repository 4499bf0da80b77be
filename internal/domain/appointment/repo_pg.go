package appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Insert(ctx context.Context, a *Appointment) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, patient_mobile, appointment_date, appointment_time, notes)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING appointment_id`,
		a.PatientID, a.DoctorID, a.PatientMobile, a.Date, a.Time, a.Notes,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// buildSearchQuery assembles the filtered join over appointments, patients
// and doctors. Name criteria become case-insensitive substring matches;
// appointment id and date are exact. Ordering by appointment id keeps the
// output deterministic.
func buildSearchQuery(crit Criteria) (string, []interface{}) {
	query := `
	SELECT a.appointment_id, p.name, d.name, a.appointment_date, a.appointment_time, a.status
	FROM appointments a
	JOIN patients p ON a.patient_id = p.patient_id
	JOIN doctors d ON a.doctor_id = d.doctor_id
	WHERE 1=1`
	var args []interface{}
	idx := 1

	if crit.PatientName != "" {
		query += fmt.Sprintf(` AND LOWER(p.name) LIKE $%d`, idx)
		args = append(args, "%"+strings.ToLower(crit.PatientName)+"%")
		idx++
	}
	if crit.AppointmentID != 0 {
		query += fmt.Sprintf(` AND a.appointment_id = $%d`, idx)
		args = append(args, crit.AppointmentID)
		idx++
	}
	if crit.DoctorName != "" {
		query += fmt.Sprintf(` AND LOWER(d.name) LIKE $%d`, idx)
		args = append(args, "%"+strings.ToLower(crit.DoctorName)+"%")
		idx++
	}
	if crit.Date != "" {
		query += fmt.Sprintf(` AND a.appointment_date = $%d`, idx)
		args = append(args, crit.Date)
		idx++
	}

	query += ` ORDER BY a.appointment_id`
	return query, args
}

func (r *repoPG) Search(ctx context.Context, crit Criteria) ([]*View, error) {
	query, args := buildSearchQuery(crit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search appointments: %w", err)
	}
	defer rows.Close()

	views := []*View{}
	for rows.Next() {
		var v View
		if err := rows.Scan(&v.AppointmentID, &v.PatientName, &v.DoctorName,
			&v.Date, &v.Time, &v.Status); err != nil {
			return nil, fmt.Errorf("scan appointment view: %w", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointment views: %w", err)
	}
	return views, nil
}
