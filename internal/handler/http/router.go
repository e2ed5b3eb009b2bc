package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hadir-hr/hadir-backend-go/internal/config"
	"github.com/hadir-hr/hadir-backend-go/internal/handler/http/middleware"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	hookHandler HookHandler,
	attendanceHandler AttendanceHandler,
	checkinHandler CheckinHandler,
	statisticsHandler StatisticsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hadir-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.WebhookSecretHeader},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Bot and serverless callers
		r.Route("/hooks", func(r chi.Router) {
			r.Use(middleware.WebhookSecret(cfg.Webhook.Secret))
			r.Post("/attendance", hookHandler.Attendance)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.RequireCompany)

			r.Get("/employees/{id}/statistics", statisticsHandler.GetEmployeeStatistics)

			// Manager only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Post("/checkin-requests/{id}/review", checkinHandler.Review)

				r.Route("/attendance", func(r chi.Router) {
					r.Post("/absent", attendanceHandler.MarkAbsentByDate)
					r.Route("/{id}", func(r chi.Router) {
						r.Put("/check-in", attendanceHandler.EditCheckIn)
						r.Put("/check-out", attendanceHandler.EditCheckOut)
						r.Post("/absent", attendanceHandler.MarkAbsent)
						r.Delete("/absent", attendanceHandler.UnmarkAbsent)
						r.Post("/overtime/approve", attendanceHandler.ApproveOvertime)
					})
				})
			})
		})
	})
	return r
}
