package pets

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrForbidden    = errors.New("not the owner of this pet")
)

// OwnerDirectory resuelve dueños sin importar el módulo users directamente.
type OwnerDirectory interface {
	OwnerIDByEmail(ctx context.Context, email string) (int64, error)
	OwnerEmail(ctx context.Context, ownerID int64) (string, error)
	OwnerName(ctx context.Context, ownerID int64) (string, error)
}

type Service struct {
	repo   Repository
	owners OwnerDirectory
	now    func() time.Time
}

func NewService(repo Repository, owners OwnerDirectory) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name      string
	BirthDate *time.Time
	PhotoURL  string
}

// Create registra una mascota para el usuario autenticado: resolvemos su
// Owner a partir del email que venía en el token.
func (s *Service) Create(ctx context.Context, requesterEmail string, in CreateInput) (WithOwner, error) {
	if strings.TrimSpace(in.Name) == "" {
		return WithOwner{}, ErrInvalidInput
	}

	ownerID, err := s.owners.OwnerIDByEmail(ctx, requesterEmail)
	if err != nil {
		return WithOwner{}, ErrNotFound
	}

	now := s.now()
	p := Pet{
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(in.Name),
		BirthDate: in.BirthDate,
		PhotoURL:  strings.TrimSpace(in.PhotoURL),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.repo.Create(ctx, p)
	if err != nil {
		return WithOwner{}, err
	}

	ownerName, err := s.owners.OwnerName(ctx, ownerID)
	if err != nil {
		ownerName = ""
	}
	return WithOwner{Pet: saved, OwnerName: ownerName}, nil
}

// ListByOwner devuelve solo mascotas activas, con nombre del dueño compuesto.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]WithOwner, error) {
	return s.repo.ListActiveByOwner(ctx, ownerID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

// Delete hace borrado lógico. Solo el dueño (comparado por email del token)
// puede borrar su mascota.
func (s *Service) Delete(ctx context.Context, petID int64, requesterEmail string) error {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return ErrNotFound
	}

	ownerEmail, err := s.owners.OwnerEmail(ctx, p.OwnerID)
	if err != nil {
		return ErrNotFound
	}
	if !strings.EqualFold(ownerEmail, strings.TrimSpace(requesterEmail)) {
		return ErrForbidden
	}

	p.Active = false
	p.UpdatedAt = s.now()
	return s.repo.Update(ctx, p)
}
