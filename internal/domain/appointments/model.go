package appointments

import "time"

// Status del ciclo de vida de una cita.
// SCHEDULED al reservar, COMPLETED cuando el veterinario registra el
// diagnóstico, INVOICED cuando se emite su factura.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusInvoiced  Status = "INVOICED"
)

// Appointment referencia mascota, veterinario y tratamiento por id.
// Puede existir sin factura; una vez facturada la relación es fija.
type Appointment struct {
	ID int64

	DateTime  time.Time
	Diagnosis string // Notas del veterinario después de la consulta.
	Status    Status

	TreatmentID    int64
	PetID          int64
	VeterinarianID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary es la proyección de listado: nombres ya resueltos.
type Summary struct {
	ID               int64
	DateTime         time.Time
	ServiceName      string
	Status           Status
	PetName          string
	VeterinarianName string
}
