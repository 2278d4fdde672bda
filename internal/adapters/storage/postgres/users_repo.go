package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SoYuDev/petalth-crm/internal/domain/users"
	"github.com/SoYuDev/petalth-crm/internal/ports/auth"
)

const uniqueViolation = "23505"

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

// CreateWithOwner inserta User y Owner dentro de una transacción:
// o persisten ambas filas o ninguna.
func (r *UsersRepo) CreateWithOwner(ctx context.Context, u users.User, o users.Owner) (users.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return users.User{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO petalth_user (first_name, last_name, email, password, rol, active)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		string(u.Rol),
		u.Active,
	).Scan(&u.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return users.User{}, users.ErrEmailTaken
		}
		return users.User{}, fmt.Errorf("insert user: %w", err)
	}

	// El Owner copia la PK del User.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO owner (id, phone, address)
		VALUES ($1,$2,$3)
	`, u.ID, o.Phone, o.Address)
	if err != nil {
		return users.User{}, fmt.Errorf("insert owner: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return users.User{}, fmt.Errorf("commit: %w", err)
	}
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, password, rol, active
		FROM petalth_user
		WHERE id = $1
	`, id))
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (users.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, password, rol, active
		FROM petalth_user
		WHERE email = $1
	`, email))
}

func (r *UsersRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM petalth_user WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

func (r *UsersRepo) GetOwner(ctx context.Context, id int64) (users.Owner, error) {
	var o users.Owner
	err := r.db.QueryRowContext(ctx, `
		SELECT id, phone, address
		FROM owner
		WHERE id = $1
	`, id).Scan(&o.ID, &o.Phone, &o.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.Owner{}, users.ErrNotFound
		}
		return users.Owner{}, err
	}
	return o, nil
}

func (r *UsersRepo) scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	var rol string
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &rol, &u.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	u.Rol = auth.Rol(rol)
	return u, nil
}
