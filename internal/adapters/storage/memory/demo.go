package memory

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/SoYuDev/petalth-crm/internal/domain/treatments"
	"github.com/SoYuDev/petalth-crm/internal/domain/users"
	"github.com/SoYuDev/petalth-crm/internal/ports/auth"
)

// SeedDemo puebla el store con un veterinario y el catálogo básico de
// tratamientos para poder reservar citas en modo dev sin BD.
// Credenciales del vet: vet@petalth.local / vet123
func SeedDemo(s *Store) error {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("vet123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	usersRepo := NewUsersRepo(s)
	if _, err := usersRepo.CreateWithVeterinarian(ctx,
		users.User{
			FirstName: "Laura",
			LastName:  "Martín",
			Email:     "vet@petalth.local",
			Password:  string(hash),
			Rol:       auth.RolVeterinarian,
			Active:    true,
		},
		users.Veterinarian{Speciality: "Medicina general"},
	); err != nil {
		return err
	}

	treatmentsRepo := NewTreatmentsRepo(s)
	for _, t := range []treatments.Treatment{
		{Name: "Consulta general", Description: "Revisión rutinaria", DurationMinutes: 20, Active: true},
		{Name: "Vacunación", Description: "Vacunas anuales", DurationMinutes: 15, Active: true},
		{Name: "Cirugía menor", Description: "Intervenciones ambulatorias", DurationMinutes: 60, Active: true},
	} {
		if _, err := treatmentsRepo.Create(ctx, t); err != nil {
			return err
		}
	}

	return nil
}
