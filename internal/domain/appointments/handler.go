package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SoYuDev/petalth-crm/internal/domain/pets"
	"github.com/SoYuDev/petalth-crm/internal/domain/treatments"
	"github.com/SoYuDev/petalth-crm/internal/domain/veterinarians"
	"github.com/SoYuDev/petalth-crm/internal/middleware"
	"github.com/SoYuDev/petalth-crm/internal/ports/auth"
)

// Registro directo (sin subrouter) porque el módulo invoices también
// cuelga rutas de /api/appointments/{appointmentID}.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/appointments", listHandler(svc))
	r.Post("/api/appointments", bookHandler(svc))
	r.Post("/api/appointments/{appointmentID}/complete", completeHandler(svc))
}

type bookRequest struct {
	DateTime       string `json:"dateTime"` // RFC3339
	PetID          int64  `json:"petId"`
	VeterinarianID int64  `json:"veterinarianId"`
	TreatmentID    int64  `json:"treatmentId"`
}

type completeRequest struct {
	Diagnosis string `json:"diagnosis"`
}

type summaryResponse struct {
	ID               int64     `json:"id"`
	DateTime         time.Time `json:"dateTime"`
	ServiceName      string    `json:"serviceName"`
	Status           string    `json:"status"`
	PetName          string    `json:"petName"`
	VeterinarianName string    `json:"veterinarianName"`
}

type appointmentResponse struct {
	ID             int64     `json:"id"`
	DateTime       time.Time `json:"dateTime"`
	Diagnosis      string    `json:"diagnosis,omitempty"`
	Status         string    `json:"status"`
	TreatmentID    int64     `json:"treatmentId"`
	PetID          int64     `json:"petId"`
	VeterinarianID int64     `json:"veterinarianId"`
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]summaryResponse, 0, len(items))
		for _, a := range items {
			out = append(out, summaryResponse{
				ID:               a.ID,
				DateTime:         a.DateTime,
				ServiceName:      a.ServiceName,
				Status:           string(a.Status),
				PetName:          a.PetName,
				VeterinarianName: a.VeterinarianName,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func bookHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req bookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		dt, err := time.Parse(time.RFC3339, strings.TrimSpace(req.DateTime))
		if err != nil {
			http.Error(w, "dateTime must be RFC3339", http.StatusBadRequest)
			return
		}

		a, err := svc.Book(r.Context(), BookInput{
			DateTime:       dt,
			PetID:          req.PetID,
			VeterinarianID: req.VeterinarianID,
			TreatmentID:    req.TreatmentID,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrPetInactive),
				errors.Is(err, treatments.ErrInactive):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, pets.ErrNotFound), errors.Is(err, veterinarians.ErrNotFound),
				errors.Is(err, treatments.ErrNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

func completeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		// Solo quien atiende (o administra) cierra la consulta.
		if !claims.Is(auth.RolVeterinarian) && !claims.Is(auth.RolAdmin) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		var req completeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Complete(r.Context(), id, req.Diagnosis)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "appointment not found", http.StatusNotFound)
			case errors.Is(err, ErrBadStatus):
				http.Error(w, "appointment is not scheduled", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:             a.ID,
		DateTime:       a.DateTime,
		Diagnosis:      a.Diagnosis,
		Status:         string(a.Status),
		TreatmentID:    a.TreatmentID,
		PetID:          a.PetID,
		VeterinarianID: a.VeterinarianID,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
