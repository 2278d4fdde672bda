package memory

import (
	"context"

	"github.com/SoYuDev/petalth-crm/internal/domain/invoices"
)

type InvoicesRepo struct {
	s *Store
}

func NewInvoicesRepo(s *Store) *InvoicesRepo {
	return &InvoicesRepo{s: s}
}

func (r *InvoicesRepo) Create(ctx context.Context, inv invoices.Invoice) (invoices.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Mismo 1:1 que fuerza el unique de Postgres.
	if _, ok := r.s.invByAppt[inv.AppointmentID]; ok {
		return invoices.Invoice{}, invoices.ErrAlreadyInvoiced
	}

	inv.ID = r.s.nextID()
	r.s.invoices[inv.ID] = inv
	r.s.invByAppt[inv.AppointmentID] = inv.ID
	return inv, nil
}

func (r *InvoicesRepo) GetByAppointment(ctx context.Context, appointmentID int64) (invoices.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.invByAppt[appointmentID]
	if !ok {
		return invoices.Invoice{}, invoices.ErrNotFound
	}
	return r.s.invoices[id], nil
}
