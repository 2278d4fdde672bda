package veterinarians

// Summary es la proyección pública de un veterinario:
// id compartido con su User, nombre completo y especialidad.
type Summary struct {
	ID         int64
	Name       string
	Speciality string
}
