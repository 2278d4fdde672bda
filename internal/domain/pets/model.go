package pets

import "time"

// Pet representa una mascota registrada por un Owner.
// Nunca se borra de la BDD: el borrado es lógico via Active para no romper
// las citas históricas que la referencian.
type Pet struct {
	ID      int64
	OwnerID int64

	Name      string
	BirthDate *time.Time
	PhotoURL  string

	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WithOwner es la proyección para listados: la mascota más el nombre
// compuesto del dueño ("First Last").
type WithOwner struct {
	Pet
	OwnerName string
}
