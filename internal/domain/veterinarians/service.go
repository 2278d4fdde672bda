package veterinarians

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("veterinarian not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAll(ctx context.Context) ([]Summary, error) {
	return s.repo.ListAll(ctx)
}

// Require falla si el veterinario no existe. Lo usa el booking de citas.
func (s *Service) Require(ctx context.Context, id int64) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
