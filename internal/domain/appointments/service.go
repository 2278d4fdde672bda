package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SoYuDev/petalth-crm/internal/domain/pets"
	"github.com/SoYuDev/petalth-crm/internal/domain/treatments"
	"github.com/SoYuDev/petalth-crm/internal/domain/veterinarians"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")
	ErrPetInactive  = errors.New("pet is inactive")
	ErrBadStatus    = errors.New("invalid status transition")
)

type Service struct {
	repo       Repository
	pets       *pets.Service
	vets       *veterinarians.Service
	treatments *treatments.Service
	now        func() time.Time
}

func NewService(repo Repository, petsSvc *pets.Service, vetsSvc *veterinarians.Service, treatmentsSvc *treatments.Service) *Service {
	return &Service{
		repo:       repo,
		pets:       petsSvc,
		vets:       vetsSvc,
		treatments: treatmentsSvc,
		now:        time.Now,
	}
}

type BookInput struct {
	DateTime       time.Time
	PetID          int64
	VeterinarianID int64
	TreatmentID    int64
}

// Book crea la cita en SCHEDULED. La mascota debe existir y estar activa,
// el veterinario existir y el tratamiento seguir ofertándose.
func (s *Service) Book(ctx context.Context, in BookInput) (Appointment, error) {
	if in.DateTime.IsZero() || !in.DateTime.After(s.now()) {
		return Appointment{}, fmt.Errorf("%w: dateTime must be in the future", ErrInvalidInput)
	}

	p, err := s.pets.GetByID(ctx, in.PetID)
	if err != nil {
		return Appointment{}, err
	}
	if !p.Active {
		return Appointment{}, ErrPetInactive
	}

	if err := s.vets.Require(ctx, in.VeterinarianID); err != nil {
		return Appointment{}, err
	}
	if err := s.treatments.RequireActive(ctx, in.TreatmentID); err != nil {
		return Appointment{}, err
	}

	now := s.now()
	return s.repo.Create(ctx, Appointment{
		DateTime:       in.DateTime,
		Status:         StatusScheduled,
		TreatmentID:    in.TreatmentID,
		PetID:          in.PetID,
		VeterinarianID: in.VeterinarianID,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

// ListAll devuelve todas las citas proyectadas.
// Sin filtro por dueño ni rol, igual que el sistema original (gap conocido).
func (s *Service) ListAll(ctx context.Context) ([]Summary, error) {
	return s.repo.ListSummaries(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

// Complete registra el diagnóstico y pasa SCHEDULED -> COMPLETED.
func (s *Service) Complete(ctx context.Context, id int64, diagnosis string) (Appointment, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if a.Status != StatusScheduled {
		return Appointment{}, ErrBadStatus
	}

	a.Diagnosis = strings.TrimSpace(diagnosis)
	a.Status = StatusCompleted
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// MarkInvoiced pasa COMPLETED -> INVOICED. Lo invoca el módulo de facturas
// dentro de la emisión; una cita solo se factura una vez.
func (s *Service) MarkInvoiced(ctx context.Context, id int64) error {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.Status != StatusCompleted {
		return ErrBadStatus
	}

	a.Status = StatusInvoiced
	a.UpdatedAt = s.now()
	return s.repo.Update(ctx, a)
}
