package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/adoptme/adoptme-api/internal/api"
	"github.com/adoptme/adoptme-api/internal/api/middleware"
	"github.com/adoptme/adoptme-api/internal/api/shared"
	"github.com/adoptme/adoptme-api/internal/config"
	"github.com/adoptme/adoptme-api/internal/service"
	"github.com/adoptme/adoptme-api/internal/service/auth"
	"github.com/adoptme/adoptme-api/internal/store"
)

// routerDeps bundles everything route construction needs.
type routerDeps struct {
	cfg       *config.Config
	log       *slog.Logger
	users     store.UserStore
	pets      store.PetStore
	sessions  *service.SessionService
	userSvc   *service.UserService
	petSvc    *service.PetService
	adoptions *service.AdoptionService
}

// newRouter builds the full route tree. Public routes (register, login, pet
// reads) sit outside the authenticated group; everything else runs behind
// bearer-token authentication plus the role policy table.
func newRouter(deps routerDeps) http.Handler {
	detail := deps.cfg.Server.IsDevelopment()

	authHandler := api.NewAuthHandler(deps.sessions, detail)
	userHandler := api.NewUserHandler(deps.userSvc, detail)
	petHandler := api.NewPetHandler(deps.petSvc, detail)
	adoptionHandler := api.NewAdoptionHandler(deps.adoptions, detail)

	authMw := middleware.NewAuthMiddleware(deps.sessions)
	policy := middleware.DefaultPolicy()

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.TraceMiddleware(deps.log))

	r.Get("/health", handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Group(func(r chi.Router) {
				r.Use(authMw.Authenticate)
				r.Use(policy.Require(middleware.OpSessionCurrent))
				r.Get("/current", authHandler.Current)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.Use(policy.Require(middleware.OpUserRead))
			r.Get("/", userHandler.List)
			r.Get("/{uid}", userHandler.Get)
		})

		r.Route("/pets", func(r chi.Router) {
			r.Get("/", petHandler.List)
			r.Get("/{pid}", petHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(authMw.Authenticate)
				r.With(policy.Require(middleware.OpPetCreate)).Post("/", petHandler.Create)
				r.With(policy.Require(middleware.OpPetUpdate)).Patch("/{pid}", petHandler.Update)
				r.With(policy.Require(middleware.OpPetDelete)).Delete("/{pid}", petHandler.Delete)
			})
		})

		r.Route("/adoptions", func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.With(policy.Require(middleware.OpAdoptionRead)).Get("/", adoptionHandler.List)
			r.With(policy.Require(middleware.OpAdoptionRead)).Get("/{aid}", adoptionHandler.Get)
			r.With(policy.Require(middleware.OpAdoptionCreate)).Post("/{uid}/{pid}", adoptionHandler.Create)
		})

		// Mock-data generation only exists in development.
		if deps.cfg.Server.IsDevelopment() {
			mockHandler := api.NewMockHandler(deps.users, deps.pets, auth.NewBcryptHasher(), detail)
			r.Route("/mocks", func(r chi.Router) {
				r.Use(authMw.Authenticate)
				r.Use(policy.Require(middleware.OpMockGeneration))
				r.Get("/mockingpets", mockHandler.MockingPets)
				r.Get("/mockingusers", mockHandler.MockingUsers)
			})
		}
	})

	return r
}

// handleHealth reports process liveness.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
