package postgres

import (
	"context"
	"database/sql"

	"github.com/SoYuDev/petalth-crm/internal/domain/veterinarians"
)

type VeterinariansRepo struct {
	db *sql.DB
}

func NewVeterinariansRepo(db *sql.DB) *VeterinariansRepo {
	return &VeterinariansRepo{db: db}
}

func (r *VeterinariansRepo) ListAll(ctx context.Context) ([]veterinarians.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, u.first_name || ' ' || u.last_name, v.speciality
		FROM veterinarian v
		JOIN petalth_user u ON u.id = v.id
		ORDER BY v.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]veterinarians.Summary, 0)
	for rows.Next() {
		var s veterinarians.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Speciality); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *VeterinariansRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM veterinarian WHERE id = $1)
	`, id).Scan(&exists)
	return exists, err
}
