package treatments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SoYuDev/petalth-crm/internal/middleware"
	"github.com/SoYuDev/petalth-crm/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/treatments", func(tr chi.Router) {
		// Catálogo público: el Owner lo ve al reservar cita.
		tr.Get("/", listActiveHandler(svc))

		// Gestión del catálogo, solo ADMIN.
		tr.Post("/", createHandler(svc))
		tr.Delete("/{treatmentID}", deactivateHandler(svc))
	})
}

type createTreatmentRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
}

type treatmentResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
}

func listActiveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]treatmentResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTreatmentResponse(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireRol(w, r, auth.RolAdmin) {
			return
		}

		var req createTreatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Create(r.Context(), CreateInput{
			Name:            req.Name,
			Description:     req.Description,
			DurationMinutes: req.DurationMinutes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toTreatmentResponse(t))
	}
}

func deactivateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireRol(w, r, auth.RolAdmin) {
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "treatmentID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid treatment id", http.StatusBadRequest)
			return
		}

		if err := svc.Deactivate(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "treatment not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func requireRol(w http.ResponseWriter, r *http.Request, rol auth.Rol) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	if !claims.Is(rol) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func toTreatmentResponse(t Treatment) treatmentResponse {
	return treatmentResponse{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		DurationMinutes: t.DurationMinutes,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
