package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hanamurayama/timelytogether-web-portal/internal/application/reminder"
	"github.com/hanamurayama/timelytogether-web-portal/internal/config"
	"github.com/hanamurayama/timelytogether-web-portal/internal/transport/http/handler"
	appmiddleware "github.com/hanamurayama/timelytogether-web-portal/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — keeps a runaway intake form from
	// flooding the store.
	intakeRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	reminderSvc := reminder.NewService(reminder.ServiceDeps{
		Repo:            deps.ReminderRepo,
		Mailer:          deps.Mailer,
		SMSSender:       deps.SMSSender,
		DefaultEmail:    deps.DefaultEmail,
		FamilySMSNumber: deps.FamilySMSNumber,
	})

	healthH := handler.NewHealthHandler()
	reminderH := handler.NewReminderHandler(reminderSvc)
	screenH := handler.NewScreenHandler(reminderSvc, deps.Resolver)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)

		r.With(intakeRL.Limit).Post("/reminders", reminderH.Create)
		r.Get("/reminders", reminderH.List)
		r.Get("/reminders/{id}", reminderH.Get)
		r.Delete("/reminders/{id}", reminderH.Delete)
		r.Post("/reminders/{id}/complete", reminderH.Complete)
	})

	// Device-facing endpoint. Kept off /v1: the screen firmware has the bare
	// path baked in.
	r.Get("/screen", screenH.Show)

	return r
}
