package veterinarians

import "context"

type Repository interface {
	ListAll(ctx context.Context) ([]Summary, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
