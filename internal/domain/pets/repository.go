package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Update(ctx context.Context, p Pet) error

	// ListActiveByOwner excluye mascotas con Active=false y resuelve el
	// nombre del dueño en la misma consulta (join en Postgres).
	ListActiveByOwner(ctx context.Context, ownerID int64) ([]WithOwner, error)
}
