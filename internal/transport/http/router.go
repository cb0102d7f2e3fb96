package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prelimpro/go-api/internal/application/deadline"
	"github.com/prelimpro/go-api/internal/application/notice"
	"github.com/prelimpro/go-api/internal/application/project"
	"github.com/prelimpro/go-api/internal/application/reminder"
	templateapp "github.com/prelimpro/go-api/internal/application/template"
	"github.com/prelimpro/go-api/internal/config"
	"github.com/prelimpro/go-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/prelimpro/go-api/internal/infrastructure/jwt"
	s3infra "github.com/prelimpro/go-api/internal/infrastructure/s3"
	"github.com/prelimpro/go-api/internal/infrastructure/smtp"
	"github.com/prelimpro/go-api/internal/infrastructure/sns"
	"github.com/prelimpro/go-api/internal/statute"
	"github.com/prelimpro/go-api/internal/transport/http/handler"
	appmiddleware "github.com/prelimpro/go-api/internal/transport/http/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Table        *statute.Table
	ProjectRepo  *dynamo.ProjectRepo
	NoticeRepo   *dynamo.NoticeRepo
	ReminderRepo *dynamo.ReminderRepo
	S3Store      *s3infra.Store
	Mailer       smtp.Mailer
	SMSSender    sns.SMSSender
	JWTProvider  *jwtinfra.Provider
	Logger       *zap.Logger
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to public compute endpoints.
	publicRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	deadlineSvc := deadline.NewService(deps.Table)
	templateSvc := templateapp.NewService(deps.Table)
	projectSvc := project.NewService(deps.ProjectRepo, deps.Table)
	noticeSvc := notice.NewService(deps.NoticeRepo, deps.ProjectRepo, deps.S3Store, deps.Mailer, deps.Table)
	reminderSvc := reminder.NewService(deps.ReminderRepo, deps.ProjectRepo, deps.SMSSender, deps.Logger)

	healthH := handler.NewHealthHandler()
	statuteH := handler.NewStatuteHandler(deps.Table, deadlineSvc)
	templateH := handler.NewTemplateHandler(templateSvc)
	projectH := handler.NewProjectHandler(projectSvc)
	noticeH := handler.NewNoticeHandler(noticeSvc)
	reminderH := handler.NewReminderHandler(reminderSvc)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)
		r.Get("/states", statuteH.ListStates)
		r.Get("/statutes", statuteH.ListRules)
		r.Get("/statutes/{state}", statuteH.GetRule)
		r.With(publicRL.Limit).Post("/deadlines", statuteH.ComputeDeadline)
		r.Get("/templates/{state}", templateH.Get)
		r.With(publicRL.Limit).Post("/templates/{state}/preview", templateH.Preview)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Post("/projects", projectH.Create)
			r.Get("/projects", projectH.List)
			r.Get("/projects/{id}", projectH.Get)
			r.Put("/projects/{id}", projectH.Update)
			r.Delete("/projects/{id}", projectH.Delete)
			r.Get("/projects/{id}/notices", noticeH.ListByProject)
			r.Get("/projects/{id}/reminders", reminderH.ListByProject)

			r.Post("/notices", noticeH.Draft)
			r.Get("/notices/{id}", noticeH.Get)
			r.Post("/notices/{id}/send", noticeH.Send)
			r.Get("/notices/{id}/download-url", noticeH.DownloadURL)

			r.Post("/reminders", reminderH.Schedule)
		})
	})

	return r
}
