package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `patient_id, name, phone, email, age, gender, address`

func (r *repoPG) Find(ctx context.Context, name, phone string) (*Patient, error) {
	var p Patient
	err := r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE name = $1 AND phone = $2`,
		name, phone,
	).Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.Age, &p.Gender, &p.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patients (name, phone, email, age, gender, address)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		p.Name, p.Phone, p.Email, p.Age, p.Gender, p.Address)
	if err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}
