// Package router assembles the HTTP route table and its guards.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/animal-shelter/internal/handlers"
	"github.com/sbilibin2017/animal-shelter/internal/middlewares"
	"github.com/sbilibin2017/animal-shelter/internal/models"
)

// AuthManager registers users and logs them in.
type AuthManager interface {
	handlers.Registerer
	handlers.Loginer
}

// Config holds everything the route table is built from.
type Config struct {
	DB             *sqlx.DB
	Tokens         middlewares.Tokener
	Roles          middlewares.RoleGetter
	Auth           AuthManager
	Species        handlers.SpeciesManager
	Pets           handlers.PetManager
	Adoptions      handlers.AdoptionManager
	MedicalRecords handlers.MedicalRecordManager
	// SwaggerURL is the location of doc.json; /swagger is not mounted when empty.
	SwaggerURL string
}

// New builds the router. Reads are public. Creates need a token, pet
// creation and every update or delete additionally need the staff or admin
// role. Mutating routes run inside a database transaction.
func New(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	auth := middlewares.AuthMiddleware(cfg.Tokens)
	staff := middlewares.RoleMiddleware(cfg.Roles, models.RoleStaff, models.RoleAdmin)
	tx := middlewares.TxMiddleware(cfg.DB)

	r.Get("/health", handlers.NewHealthHandler(cfg.DB))
	r.Handle("/metrics", promhttp.Handler())
	if cfg.SwaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(cfg.SwaggerURL)))
	}

	r.Post("/register", handlers.NewRegisterHandler(cfg.Auth))
	r.Post("/login", handlers.NewLoginHandler(cfg.Auth))

	r.Route("/species", func(r chi.Router) {
		r.Get("/", handlers.NewListSpeciesHandler(cfg.Species))
		r.With(auth, tx).Post("/", handlers.NewCreateSpeciesHandler(cfg.Species))
		r.With(auth, staff, tx).Put("/{id:[0-9]+}", handlers.NewUpdateSpeciesHandler(cfg.Species))
		r.With(auth, staff, tx).Delete("/{id:[0-9]+}", handlers.NewDeleteSpeciesHandler(cfg.Species))
	})

	r.Route("/pets", func(r chi.Router) {
		r.Get("/", handlers.NewListPetsHandler(cfg.Pets))
		r.With(auth, staff, tx).Post("/", handlers.NewCreatePetHandler(cfg.Pets))
		r.With(auth, staff, tx).Put("/{id:[0-9]+}", handlers.NewUpdatePetHandler(cfg.Pets))
		r.With(auth, staff, tx).Delete("/{id:[0-9]+}", handlers.NewDeletePetHandler(cfg.Pets))
	})

	r.Route("/adoptions", func(r chi.Router) {
		r.Get("/", handlers.NewListAdoptionsHandler(cfg.Adoptions))
		r.With(auth, tx).Post("/", handlers.NewCreateAdoptionHandler(cfg.Adoptions))
		r.With(auth, staff, tx).Put("/{id:[0-9]+}", handlers.NewUpdateAdoptionHandler(cfg.Adoptions))
		r.With(auth, staff, tx).Delete("/{id:[0-9]+}", handlers.NewDeleteAdoptionHandler(cfg.Adoptions))
	})

	r.Route("/medical_records", func(r chi.Router) {
		r.Get("/", handlers.NewListMedicalRecordsHandler(cfg.MedicalRecords))
		r.With(auth, tx).Post("/", handlers.NewCreateMedicalRecordHandler(cfg.MedicalRecords))
		r.With(auth, staff, tx).Put("/{id:[0-9]+}", handlers.NewUpdateMedicalRecordHandler(cfg.MedicalRecords))
		r.With(auth, staff, tx).Delete("/{id:[0-9]+}", handlers.NewDeleteMedicalRecordHandler(cfg.MedicalRecords))
	})

	return r
}
