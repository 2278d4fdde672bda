package users

import "context"

type Repository interface {
	// CreateWithOwner persiste User + Owner como unidad: o se guardan ambos
	// o ninguno. El Owner toma el id generado para el User.
	CreateWithOwner(ctx context.Context, u User, o Owner) (User, error)

	GetByID(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetOwner(ctx context.Context, id int64) (Owner, error)
}
