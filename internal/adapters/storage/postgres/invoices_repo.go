package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SoYuDev/petalth-crm/internal/domain/invoices"
)

type InvoicesRepo struct {
	db *sql.DB
}

func NewInvoicesRepo(db *sql.DB) *InvoicesRepo {
	return &InvoicesRepo{db: db}
}

func (r *InvoicesRepo) Create(ctx context.Context, inv invoices.Invoice) (invoices.Invoice, error) {
	// appointment_id es UNIQUE: la BD garantiza el 1:1 aunque dos requests
	// intenten facturar la misma cita a la vez.
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO invoice (appointment_id, issue_date, amount, status)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`,
		inv.AppointmentID,
		inv.IssueDate,
		inv.Amount,
		string(inv.Status),
	).Scan(&inv.ID)
	if err != nil {
		return invoices.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoicesRepo) GetByAppointment(ctx context.Context, appointmentID int64) (invoices.Invoice, error) {
	var inv invoices.Invoice
	var status string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, appointment_id, issue_date, amount, status
		FROM invoice
		WHERE appointment_id = $1
	`, appointmentID).Scan(&inv.ID, &inv.AppointmentID, &inv.IssueDate, &inv.Amount, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return invoices.Invoice{}, invoices.ErrNotFound
		}
		return invoices.Invoice{}, err
	}
	inv.Status = invoices.Status(status)
	return inv, nil
}
