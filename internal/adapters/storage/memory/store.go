package memory

import (
	"sync"

	"github.com/SoYuDev/petalth-crm/internal/domain/appointments"
	"github.com/SoYuDev/petalth-crm/internal/domain/invoices"
	"github.com/SoYuDev/petalth-crm/internal/domain/pets"
	"github.com/SoYuDev/petalth-crm/internal/domain/treatments"
	"github.com/SoYuDev/petalth-crm/internal/domain/users"
)

// Store es el estado compartido de los repos in-memory (dev y tests).
// Un único mutex y una secuencia de ids para todo: las proyecciones que en
// Postgres son joins aquí leen varias tablas bajo el mismo lock.
type Store struct {
	mu  sync.RWMutex
	seq int64

	users        map[int64]users.User
	usersByEmail map[string]int64
	owners       map[int64]users.Owner
	vets         map[int64]users.Veterinarian
	pets         map[int64]pets.Pet
	treatments   map[int64]treatments.Treatment
	appointments map[int64]appointments.Appointment
	invoices     map[int64]invoices.Invoice
	invByAppt    map[int64]int64
}

func NewStore() *Store {
	return &Store{
		users:        make(map[int64]users.User),
		usersByEmail: make(map[string]int64),
		owners:       make(map[int64]users.Owner),
		vets:         make(map[int64]users.Veterinarian),
		pets:         make(map[int64]pets.Pet),
		treatments:   make(map[int64]treatments.Treatment),
		appointments: make(map[int64]appointments.Appointment),
		invoices:     make(map[int64]invoices.Invoice),
		invByAppt:    make(map[int64]int64),
	}
}

// nextID debe llamarse con el lock de escritura tomado.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func (s *Store) userFullName(id int64) string {
	if u, ok := s.users[id]; ok {
		return u.FullName()
	}
	return ""
}
