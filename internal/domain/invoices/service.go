package invoices

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SoYuDev/petalth-crm/internal/domain/appointments"
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrNotFound        = errors.New("invoice not found")
	ErrAlreadyInvoiced = errors.New("appointment already invoiced")
	ErrNotCompleted    = errors.New("appointment is not completed")
)

type Service struct {
	repo  Repository
	appts *appointments.Service
	now   func() time.Time
}

func NewService(repo Repository, apptsSvc *appointments.Service) *Service {
	return &Service{
		repo:  repo,
		appts: apptsSvc,
		now:   time.Now,
	}
}

// CreateForAppointment emite la única factura de una cita COMPLETED y la
// pasa a INVOICED. Una segunda emisión sobre la misma cita falla.
func (s *Service) CreateForAppointment(ctx context.Context, appointmentID int64, amount decimal.Decimal) (Invoice, error) {
	if !amount.IsPositive() {
		return Invoice{}, ErrInvalidAmount
	}

	a, err := s.appts.GetByID(ctx, appointmentID)
	if err != nil {
		return Invoice{}, err
	}

	switch a.Status {
	case appointments.StatusInvoiced:
		return Invoice{}, ErrAlreadyInvoiced
	case appointments.StatusCompleted:
		// ok
	default:
		return Invoice{}, ErrNotCompleted
	}

	if _, err := s.repo.GetByAppointment(ctx, appointmentID); err == nil {
		return Invoice{}, ErrAlreadyInvoiced
	}

	inv, err := s.repo.Create(ctx, Invoice{
		AppointmentID: appointmentID,
		IssueDate:     s.now(),
		Amount:        amount,
		Status:        StatusPending,
	})
	if err != nil {
		return Invoice{}, err
	}

	if err := s.appts.MarkInvoiced(ctx, appointmentID); err != nil {
		return Invoice{}, err
	}

	return inv, nil
}

func (s *Service) GetByAppointment(ctx context.Context, appointmentID int64) (Invoice, error) {
	inv, err := s.repo.GetByAppointment(ctx, appointmentID)
	if err != nil {
		return Invoice{}, ErrNotFound
	}
	return inv, nil
}
