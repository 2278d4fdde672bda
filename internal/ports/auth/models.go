package auth

// Rol define los roles soportados por el sistema.
type Rol string

const (
	RolOwner        Rol = "OWNER"
	RolVeterinarian Rol = "VETERINARIAN"
	RolAdmin        Rol = "ADMIN"
)

// Claims representa al usuario autenticado extraído de un token válido.
// No es un objeto User completo: solo lo que los handlers necesitan
// para decidir autorización.
type Claims struct {
	UserID int64
	Email  string
	Rol    Rol
}

func (c Claims) Is(r Rol) bool {
	return c.Rol == r
}
