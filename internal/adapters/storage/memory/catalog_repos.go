package memory

import (
	"context"
	"sort"

	"github.com/SoYuDev/petalth-crm/internal/domain/treatments"
	"github.com/SoYuDev/petalth-crm/internal/domain/veterinarians"
)

type VeterinariansRepo struct {
	s *Store
}

func NewVeterinariansRepo(s *Store) *VeterinariansRepo {
	return &VeterinariansRepo{s: s}
}

func (r *VeterinariansRepo) ListAll(ctx context.Context) ([]veterinarians.Summary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]veterinarians.Summary, 0, len(r.s.vets))
	for id, v := range r.s.vets {
		out = append(out, veterinarians.Summary{
			ID:         id,
			Name:       r.s.userFullName(id),
			Speciality: v.Speciality,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *VeterinariansRepo) Exists(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.vets[id]
	return ok, nil
}

type TreatmentsRepo struct {
	s *Store
}

func NewTreatmentsRepo(s *Store) *TreatmentsRepo {
	return &TreatmentsRepo{s: s}
}

func (r *TreatmentsRepo) Create(ctx context.Context, t treatments.Treatment) (treatments.Treatment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.ID = r.s.nextID()
	r.s.treatments[t.ID] = t
	return t, nil
}

func (r *TreatmentsRepo) GetByID(ctx context.Context, id int64) (treatments.Treatment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.treatments[id]
	if !ok {
		return treatments.Treatment{}, treatments.ErrNotFound
	}
	return t, nil
}

func (r *TreatmentsRepo) Update(ctx context.Context, t treatments.Treatment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.treatments[t.ID]; !ok {
		return treatments.ErrNotFound
	}
	r.s.treatments[t.ID] = t
	return nil
}

func (r *TreatmentsRepo) ListActive(ctx context.Context) ([]treatments.Treatment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]treatments.Treatment, 0)
	for _, t := range r.s.treatments {
		if t.Active {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
