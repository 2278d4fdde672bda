package treatments

import "context"

type Repository interface {
	Create(ctx context.Context, t Treatment) (Treatment, error)
	GetByID(ctx context.Context, id int64) (Treatment, error)
	Update(ctx context.Context, t Treatment) error
	ListActive(ctx context.Context) ([]Treatment, error)
}
