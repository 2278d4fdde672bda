package router

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/SoYuDev/petalth-crm/internal/adapters/auth/jwtauth"
	mem "github.com/SoYuDev/petalth-crm/internal/adapters/storage/memory"
	pg "github.com/SoYuDev/petalth-crm/internal/adapters/storage/postgres"
	"github.com/SoYuDev/petalth-crm/internal/domain/appointments"
	"github.com/SoYuDev/petalth-crm/internal/domain/invoices"
	"github.com/SoYuDev/petalth-crm/internal/domain/pets"
	"github.com/SoYuDev/petalth-crm/internal/domain/treatments"
	"github.com/SoYuDev/petalth-crm/internal/domain/users"
	"github.com/SoYuDev/petalth-crm/internal/domain/veterinarians"
	"github.com/SoYuDev/petalth-crm/internal/middleware"
)

type Options struct {
	// JWT configura el emisor/verificador de tokens.
	JWT jwtauth.Config

	// Orígenes CORS permitidos; vacío = sin CORS.
	Cors []string

	// Si viene DB, usa Postgres. Si no, usa Store (o crea uno nuevo).
	DB    *sql.DB
	Store *mem.Store
}

func NewRouter(opts Options) http.Handler {
	var (
		usersRepo        users.Repository
		petsRepo         pets.Repository
		vetsRepo         veterinarians.Repository
		treatmentsRepo   treatments.Repository
		appointmentsRepo appointments.Repository
		invoicesRepo     invoices.Repository
	)

	if opts.DB != nil {
		usersRepo = pg.NewUsersRepo(opts.DB)
		petsRepo = pg.NewPetsRepo(opts.DB)
		vetsRepo = pg.NewVeterinariansRepo(opts.DB)
		treatmentsRepo = pg.NewTreatmentsRepo(opts.DB)
		appointmentsRepo = pg.NewAppointmentsRepo(opts.DB)
		invoicesRepo = pg.NewInvoicesRepo(opts.DB)
	} else {
		store := opts.Store
		if store == nil {
			store = mem.NewStore()
		}
		usersRepo = mem.NewUsersRepo(store)
		petsRepo = mem.NewPetsRepo(store)
		vetsRepo = mem.NewVeterinariansRepo(store)
		treatmentsRepo = mem.NewTreatmentsRepo(store)
		appointmentsRepo = mem.NewAppointmentsRepo(store)
		invoicesRepo = mem.NewInvoicesRepo(store)
	}

	// Servicios por módulo
	tokens := jwtauth.NewTokens(opts.JWT)
	usersSvc := users.NewService(usersRepo, tokens)
	petsSvc := pets.NewService(petsRepo, usersSvc)
	vetsSvc := veterinarians.NewService(vetsRepo)
	treatmentsSvc := treatments.NewService(treatmentsRepo)
	appointmentsSvc := appointments.NewService(appointmentsRepo, petsSvc, vetsSvc, treatmentsSvc)
	invoicesSvc := invoices.NewService(invoicesRepo, appointmentsSvc)

	verifier := jwtauth.NewVerifier(tokens, accountSource{users: usersSvc})

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger)

	if len(opts.Cors) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.Cors,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Use(middleware.AuthContext(verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	pets.RegisterRoutes(r, petsSvc)
	veterinarians.RegisterRoutes(r, vetsSvc)
	treatments.RegisterRoutes(r, treatmentsSvc)
	appointments.RegisterRoutes(r, appointmentsSvc)
	invoices.RegisterRoutes(r, invoicesSvc)

	return r
}

// accountSource adapta users.Service al puerto que espera el verifier.
type accountSource struct {
	users *users.Service
}

func (a accountSource) ActiveAccount(ctx context.Context, email string) (jwtauth.Account, error) {
	u, err := a.users.ActiveByEmail(ctx, email)
	if err != nil {
		return jwtauth.Account{}, err
	}
	return jwtauth.Account{ID: u.ID, Email: u.Email, Rol: u.Rol}, nil
}
