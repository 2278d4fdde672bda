package appointments

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) (Appointment, error)
	GetByID(ctx context.Context, id int64) (Appointment, error)
	Update(ctx context.Context, a Appointment) error

	// ListSummaries resuelve nombre de tratamiento, mascota y veterinario
	// en la misma consulta (joins en Postgres) para evitar N+1.
	ListSummaries(ctx context.Context) ([]Summary, error)
}
