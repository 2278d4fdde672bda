package invoices

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/SoYuDev/petalth-crm/internal/domain/appointments"
	"github.com/SoYuDev/petalth-crm/internal/middleware"
	"github.com/SoYuDev/petalth-crm/internal/ports/auth"
)

// Las rutas cuelgan de la cita porque la factura no existe sin ella.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/appointments/{appointmentID}/invoice", createHandler(svc))
	r.Get("/api/appointments/{appointmentID}/invoice", getHandler(svc))
}

type createInvoiceRequest struct {
	Amount string `json:"amount"` // decimal en string, p.ej. "49.90"
}

type invoiceResponse struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointmentId"`
	IssueDate     time.Time `json:"issueDate"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.Is(auth.RolVeterinarian) && !claims.Is(auth.RolAdmin) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		apptID, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		var req createInvoiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			http.Error(w, "amount must be a decimal string", http.StatusBadRequest)
			return
		}

		inv, err := svc.CreateForAppointment(r.Context(), apptID, amount)
		if err != nil {
			switch {
			case errors.Is(err, appointments.ErrNotFound):
				http.Error(w, "appointment not found", http.StatusNotFound)
			case errors.Is(err, ErrAlreadyInvoiced):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrNotCompleted), errors.Is(err, ErrInvalidAmount):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toInvoiceResponse(inv))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		apptID, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		inv, err := svc.GetByAppointment(r.Context(), apptID)
		if err != nil {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toInvoiceResponse(inv))
	}
}

func toInvoiceResponse(inv Invoice) invoiceResponse {
	return invoiceResponse{
		ID:            inv.ID,
		AppointmentID: inv.AppointmentID,
		IssueDate:     inv.IssueDate,
		Amount:        inv.Amount.StringFixed(2),
		Status:        string(inv.Status),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
