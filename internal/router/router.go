package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/config"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/handlers"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/middleware"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/notify"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository/postgres"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/service"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithAuth(cfg))

	// Health
	r.Get("/healthz", handlers.Health())

	// Repos + services + handlers
	queryRepo := postgres.NewQueryRepo(db)
	faqRepo := postgres.NewFAQRepo(db)
	adminRepo := postgres.NewAdminRepo(db)
	blockRepo := postgres.NewBlockRepo(db)

	querySvc := service.NewQueryService(queryRepo, faqRepo, blockRepo, notify.NewLogNotifier(log), log)
	faqSvc := service.NewFAQService(faqRepo)
	dashSvc := service.NewDashboardService(queryRepo)
	authSvc := service.NewAuthService(adminRepo, cfg.SessionSecret)

	qh := handlers.NewQueryHTTP(querySvc)
	fh := handlers.NewFAQHTTP(faqSvc)
	dh := handlers.NewDashboardHTTP(dashSvc)
	ah := handlers.NewAuthHTTP(authSvc)
	mh := handlers.NewAdminHTTP(adminRepo)
	bh := handlers.NewBlockHTTP(blockRepo)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", ah.Login())
		r.Post("/logout", ah.Logout())
		r.With(middleware.RequireAuth).Get("/me", ah.Me())
	})

	r.Route("/api/queries", func(r chi.Router) {
		r.Post("/", qh.Submit())  // public intake
		r.Get("/mine", qh.Mine()) // requester status view

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", qh.List())
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", qh.Get())
				r.Patch("/", qh.Update())
				r.Delete("/", qh.Delete())
				r.Post("/faq", qh.Promote())
			})
		})
	})

	r.Route("/api/faqs", func(r chi.Router) {
		r.Get("/", fh.ListPublic()) // public FAQ page

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/", fh.Create())
			r.Get("/all", fh.ListAll())
			r.Patch("/{id}", fh.SetAnswer())
			r.Post("/{id}/toggle", fh.Toggle())
		})
	})

	r.Route("/api/blocked", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", bh.List())
		r.Post("/toggle", bh.Toggle())
	})

	r.With(middleware.RequireAdmin).Get("/api/dashboard", dh.Summary())

	r.Route("/api/admins", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", mh.List())
		r.Patch("/{id}/active", mh.SetActive())
	})

	return r
}
