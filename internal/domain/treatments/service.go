package treatments

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("treatment not found")
	ErrInactive     = errors.New("treatment no longer offered")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name            string
	Description     string
	DurationMinutes int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Treatment, error) {
	if strings.TrimSpace(in.Name) == "" || in.DurationMinutes <= 0 {
		return Treatment{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, Treatment{
		Name:            strings.TrimSpace(in.Name),
		Description:     strings.TrimSpace(in.Description),
		DurationMinutes: in.DurationMinutes,
		Active:          true,
	})
}

// ListActive es lo que ve el Owner al reservar: solo servicios ofertados.
func (s *Service) ListActive(ctx context.Context) ([]Treatment, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Treatment, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Treatment{}, ErrNotFound
	}
	return t, nil
}

// RequireActive falla si el tratamiento no existe o dejó de ofertarse.
// Lo usa el booking; las citas ya creadas no pasan por aquí.
func (s *Service) RequireActive(ctx context.Context, id int64) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if !t.Active {
		return ErrInactive
	}
	return nil
}

// Deactivate retira el servicio de la oferta (borrado lógico).
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	t.Active = false
	return s.repo.Update(ctx, t)
}
