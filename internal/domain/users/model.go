package users

import (
	"strings"

	"github.com/SoYuDev/petalth-crm/internal/ports/auth"
)

// User es la cuenta base del sistema. El email actúa como username.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Password  string // hash bcrypt, nunca el texto plano
	Rol       auth.Rol
	Active    bool
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Owner comparte id con su User (la PK se copia de la tabla de usuarios).
type Owner struct {
	ID      int64
	Phone   string
	Address string
}

// Veterinarian comparte id con su User.
type Veterinarian struct {
	ID         int64
	Speciality string
}
