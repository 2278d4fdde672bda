package invoices_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	memory "github.com/SoYuDev/petalth-crm/internal/adapters/storage/memory"
	"github.com/SoYuDev/petalth-crm/internal/domain/appointments"
	"github.com/SoYuDev/petalth-crm/internal/domain/invoices"
	"github.com/SoYuDev/petalth-crm/internal/domain/pets"
	"github.com/SoYuDev/petalth-crm/internal/domain/treatments"
	"github.com/SoYuDev/petalth-crm/internal/domain/users"
	"github.com/SoYuDev/petalth-crm/internal/domain/veterinarians"
	"github.com/SoYuDev/petalth-crm/internal/ports/auth"
)

type noopIssuer struct{}

func (noopIssuer) Issue(string, map[string]any) (string, error) { return "tok", nil }

// setup crea una cita en SCHEDULED lista para completar y facturar.
func setup(t *testing.T) (*invoices.Service, *appointments.Service, int64) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	usersRepo := memory.NewUsersRepo(store)
	vet, err := usersRepo.CreateWithVeterinarian(ctx,
		users.User{FirstName: "Laura", Email: "vet@example.com", Rol: auth.RolVeterinarian, Active: true},
		users.Veterinarian{},
	)
	if err != nil {
		t.Fatalf("seed vet: %v", err)
	}
	owner, err := usersRepo.CreateWithOwner(ctx,
		users.User{FirstName: "Ana", Email: "ana@example.com", Rol: auth.RolOwner, Active: true},
		users.Owner{},
	)
	if err != nil {
		t.Fatalf("seed owner: %v", err)
	}

	usersSvc := users.NewService(usersRepo, noopIssuer{})
	petsSvc := pets.NewService(memory.NewPetsRepo(store), usersSvc)
	vetsSvc := veterinarians.NewService(memory.NewVeterinariansRepo(store))
	treatmentsSvc := treatments.NewService(memory.NewTreatmentsRepo(store))
	apptsSvc := appointments.NewService(memory.NewAppointmentsRepo(store), petsSvc, vetsSvc, treatmentsSvc)
	invSvc := invoices.NewService(memory.NewInvoicesRepo(store), apptsSvc)

	p, err := petsSvc.Create(ctx, owner.Email, pets.CreateInput{Name: "Milo"})
	if err != nil {
		t.Fatalf("seed pet: %v", err)
	}
	tr, err := treatmentsSvc.Create(ctx, treatments.CreateInput{Name: "Consulta general", DurationMinutes: 20})
	if err != nil {
		t.Fatalf("seed treatment: %v", err)
	}

	a, err := apptsSvc.Book(ctx, appointments.BookInput{
		DateTime:       time.Now().Add(24 * time.Hour),
		PetID:          p.ID,
		VeterinarianID: vet.ID,
		TreatmentID:    tr.ID,
	})
	if err != nil {
		t.Fatalf("book appointment: %v", err)
	}

	return invSvc, apptsSvc, a.ID
}

func TestService_CreateForAppointment(t *testing.T) {
	invSvc, apptsSvc, apptID := setup(t)
	ctx := context.Background()

	if _, err := apptsSvc.Complete(ctx, apptID, "Otitis leve"); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	amount := decimal.RequireFromString("49.90")
	inv, err := invSvc.CreateForAppointment(ctx, apptID, amount)
	if err != nil {
		t.Fatalf("CreateForAppointment returned error: %v", err)
	}
	if inv.Status != invoices.StatusPending {
		t.Fatalf("expected PENDING, got %s", inv.Status)
	}
	// El importe se conserva exacto, sin redondeos de float.
	if !inv.Amount.Equal(amount) {
		t.Fatalf("expected amount 49.90, got %s", inv.Amount)
	}

	// La cita queda INVOICED tras emitir.
	a, err := apptsSvc.GetByID(ctx, apptID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if a.Status != appointments.StatusInvoiced {
		t.Fatalf("expected appointment INVOICED, got %s", a.Status)
	}

	got, err := invSvc.GetByAppointment(ctx, apptID)
	if err != nil {
		t.Fatalf("GetByAppointment returned error: %v", err)
	}
	if got.ID != inv.ID {
		t.Fatalf("expected invoice %d, got %d", inv.ID, got.ID)
	}
}

func TestService_CreateForAppointment_OnlyOnce(t *testing.T) {
	invSvc, apptsSvc, apptID := setup(t)
	ctx := context.Background()

	if _, err := apptsSvc.Complete(ctx, apptID, "ok"); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if _, err := invSvc.CreateForAppointment(ctx, apptID, decimal.RequireFromString("30")); err != nil {
		t.Fatalf("first invoice returned error: %v", err)
	}

	_, err := invSvc.CreateForAppointment(ctx, apptID, decimal.RequireFromString("30"))
	if !errors.Is(err, invoices.ErrAlreadyInvoiced) {
		t.Fatalf("expected ErrAlreadyInvoiced, got %v", err)
	}
}

func TestService_CreateForAppointment_RequiresCompleted(t *testing.T) {
	invSvc, _, apptID := setup(t)

	// La cita sigue en SCHEDULED.
	_, err := invSvc.CreateForAppointment(context.Background(), apptID, decimal.RequireFromString("30"))
	if !errors.Is(err, invoices.ErrNotCompleted) {
		t.Fatalf("expected ErrNotCompleted, got %v", err)
	}
}

func TestService_CreateForAppointment_RejectsNonPositiveAmount(t *testing.T) {
	invSvc, apptsSvc, apptID := setup(t)
	ctx := context.Background()

	if _, err := apptsSvc.Complete(ctx, apptID, "ok"); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	for _, raw := range []string{"0", "-10.50"} {
		_, err := invSvc.CreateForAppointment(ctx, apptID, decimal.RequireFromString(raw))
		if !errors.Is(err, invoices.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount for %s, got %v", raw, err)
		}
	}
}

func TestService_GetByAppointment_NotFound(t *testing.T) {
	invSvc, _, apptID := setup(t)

	_, err := invSvc.GetByAppointment(context.Background(), apptID)
	if !errors.Is(err, invoices.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
