package memory

import (
	"context"
	"sort"

	"github.com/SoYuDev/petalth-crm/internal/domain/appointments"
)

type AppointmentsRepo struct {
	s *Store
}

func NewAppointmentsRepo(s *Store) *AppointmentsRepo {
	return &AppointmentsRepo{s: s}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a.ID = r.s.nextID()
	r.s.appointments[a.ID] = a
	return a, nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.appointments[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.appointments[a.ID]; !ok {
		return appointments.ErrNotFound
	}
	r.s.appointments[a.ID] = a
	return nil
}

func (r *AppointmentsRepo) ListSummaries(ctx context.Context) ([]appointments.Summary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointments.Summary, 0, len(r.s.appointments))
	for _, a := range r.s.appointments {
		s := appointments.Summary{
			ID:               a.ID,
			DateTime:         a.DateTime,
			Status:           a.Status,
			VeterinarianName: r.s.userFullName(a.VeterinarianID),
		}
		if t, ok := r.s.treatments[a.TreatmentID]; ok {
			s.ServiceName = t.Name
		}
		if p, ok := r.s.pets[a.PetID]; ok {
			s.PetName = p.Name
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}
