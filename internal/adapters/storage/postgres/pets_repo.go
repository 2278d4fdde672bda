package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SoYuDev/petalth-crm/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pet (owner_id, name, birth_date, photo_url, active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		p.OwnerID,
		p.Name,
		toNullDate(p.BirthDate),
		p.PhotoURL,
		p.Active,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, birth_date, photo_url, active, created_at, updated_at
		FROM pet
		WHERE id = $1
	`, id)

	var p pets.Pet
	var bd sql.NullTime
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&bd,
		&p.PhotoURL,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	if bd.Valid {
		t := bd.Time
		p.BirthDate = &t
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pet
		SET name = $2, birth_date = $3, photo_url = $4, active = $5, updated_at = $6
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		toNullDate(p.BirthDate),
		p.PhotoURL,
		p.Active,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

// ListActiveByOwner hace el join con owner+user para traer el nombre del
// dueño en la misma consulta (el equivalente al JOIN FETCH del original).
func (r *PetsRepo) ListActiveByOwner(ctx context.Context, ownerID int64) ([]pets.WithOwner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			p.id, p.owner_id, p.name, p.birth_date, p.photo_url, p.active,
			p.created_at, p.updated_at,
			u.first_name || ' ' || u.last_name AS owner_name
		FROM pet p
		JOIN owner o ON o.id = p.owner_id
		JOIN petalth_user u ON u.id = o.id
		WHERE p.owner_id = $1 AND p.active = true
		ORDER BY p.created_at ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.WithOwner, 0)
	for rows.Next() {
		var p pets.WithOwner
		var bd sql.NullTime
		if err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Name,
			&bd,
			&p.PhotoURL,
			&p.Active,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.OwnerName,
		); err != nil {
			return nil, err
		}
		if bd.Valid {
			t := bd.Time
			p.BirthDate = &t
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// birth_date es DATE, lo pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
