package memory

import (
	"context"
	"sort"

	"github.com/SoYuDev/petalth-crm/internal/domain/pets"
)

type PetsRepo struct {
	s *Store
}

func NewPetsRepo(s *Store) *PetsRepo {
	return &PetsRepo{s: s}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.nextID()
	r.s.pets[p.ID] = p
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[p.ID]; !ok {
		return pets.ErrNotFound
	}
	r.s.pets[p.ID] = p
	return nil
}

func (r *PetsRepo) ListActiveByOwner(ctx context.Context, ownerID int64) ([]pets.WithOwner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ownerName := r.s.userFullName(ownerID)

	out := make([]pets.WithOwner, 0)
	for _, p := range r.s.pets {
		if p.OwnerID != ownerID || !p.Active {
			continue
		}
		out = append(out, pets.WithOwner{Pet: p, OwnerName: ownerName})
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
