package invoices

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)

// Invoice no puede existir sin su cita y la relación es 1:1 e inmutable
// (unique FK en BD). Amount usa decimal exacto, nunca float, para que los
// totales monetarios no arrastren errores de redondeo.
type Invoice struct {
	ID            int64
	AppointmentID int64
	IssueDate     time.Time
	Amount        decimal.Decimal
	Status        Status
}
