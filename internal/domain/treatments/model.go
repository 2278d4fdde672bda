package treatments

// Treatment es un servicio médico ofertable (vacunación, cirugía, consulta...).
// Desactivarlo lo oculta de futuras reservas pero no toca citas pasadas,
// que siguen referenciándolo por id.
type Treatment struct {
	ID              int64
	Name            string
	Description     string
	DurationMinutes int
	Active          bool
}
