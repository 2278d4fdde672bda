package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SoYuDev/petalth-crm/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO appointment (
			date_time, diagnosis, status,
			medicaltreatment_id, pet_id, veterinarian_id,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		a.DateTime,
		a.Diagnosis,
		string(a.Status),
		a.TreatmentID,
		a.PetID,
		a.VeterinarianID,
		a.CreatedAt,
		a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	var a appointments.Appointment
	var status string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, date_time, diagnosis, status,
			medicaltreatment_id, pet_id, veterinarian_id,
			created_at, updated_at
		FROM appointment
		WHERE id = $1
	`, id).Scan(
		&a.ID,
		&a.DateTime,
		&a.Diagnosis,
		&status,
		&a.TreatmentID,
		&a.PetID,
		&a.VeterinarianID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	a.Status = appointments.Status(status)
	return a, nil
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointment
		SET date_time = $2, diagnosis = $3, status = $4, updated_at = $5
		WHERE id = $1
	`, a.ID, a.DateTime, a.Diagnosis, string(a.Status), a.UpdatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

// ListSummaries resuelve los tres nombres con joins, como el JOIN FETCH
// que usaba el repositorio original.
func (r *AppointmentsRepo) ListSummaries(ctx context.Context) ([]appointments.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			a.id, a.date_time, mt.name, a.status, p.name,
			u.first_name || ' ' || u.last_name
		FROM appointment a
		JOIN medical_treatment mt ON mt.id = a.medicaltreatment_id
		JOIN pet p ON p.id = a.pet_id
		JOIN veterinarian v ON v.id = a.veterinarian_id
		JOIN petalth_user u ON u.id = v.id
		ORDER BY a.date_time ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Summary, 0)
	for rows.Next() {
		var s appointments.Summary
		var status string
		if err := rows.Scan(&s.ID, &s.DateTime, &s.ServiceName, &status, &s.PetName, &s.VeterinarianName); err != nil {
			return nil, err
		}
		s.Status = appointments.Status(status)
		out = append(out, s)
	}
	return out, rows.Err()
}
