package invoices

import "context"

type Repository interface {
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	GetByAppointment(ctx context.Context, appointmentID int64) (Invoice, error)
}
