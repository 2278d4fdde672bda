package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SoYuDev/petalth-crm/internal/domain/treatments"
)

type TreatmentsRepo struct {
	db *sql.DB
}

func NewTreatmentsRepo(db *sql.DB) *TreatmentsRepo {
	return &TreatmentsRepo{db: db}
}

func (r *TreatmentsRepo) Create(ctx context.Context, t treatments.Treatment) (treatments.Treatment, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medical_treatment (name, description, duration_minutes, active)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, t.Name, t.Description, t.DurationMinutes, t.Active).Scan(&t.ID)
	if err != nil {
		return treatments.Treatment{}, err
	}
	return t, nil
}

func (r *TreatmentsRepo) GetByID(ctx context.Context, id int64) (treatments.Treatment, error) {
	var t treatments.Treatment
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, duration_minutes, active
		FROM medical_treatment
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.Description, &t.DurationMinutes, &t.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return treatments.Treatment{}, treatments.ErrNotFound
		}
		return treatments.Treatment{}, err
	}
	return t, nil
}

func (r *TreatmentsRepo) Update(ctx context.Context, t treatments.Treatment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medical_treatment
		SET name = $2, description = $3, duration_minutes = $4, active = $5
		WHERE id = $1
	`, t.ID, t.Name, t.Description, t.DurationMinutes, t.Active)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return treatments.ErrNotFound
	}
	return nil
}

func (r *TreatmentsRepo) ListActive(ctx context.Context) ([]treatments.Treatment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, duration_minutes, active
		FROM medical_treatment
		WHERE active = true
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]treatments.Treatment, 0)
	for rows.Next() {
		var t treatments.Treatment
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.DurationMinutes, &t.Active); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
