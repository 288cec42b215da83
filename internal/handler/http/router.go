package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/punchpoint/punchpoint-backend-go/internal/handler/http/middleware"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, attendanceHandler AttendanceHandler, liveHandler LiveHandler, departmentHandler DepartmentHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "punchpoint"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {

			// Stream token travels as a query parameter, so the SSE
			// endpoint authenticates itself and sits outside the JWT group.
			r.Get("/live", liveHandler.Stream)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

				r.Post("/scan", attendanceHandler.Scan)
				r.Get("/metrics", attendanceHandler.GetMyMetrics)
				r.Get("/live/token", liveHandler.GetStreamToken)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)

					r.Get("/{userID}/metrics", attendanceHandler.GetMetrics)
					r.Get("/{userID}/report", attendanceHandler.GetReport)
					r.Get("/{userID}/adherence/{date}", attendanceHandler.GetAdherence)

					r.Get("/departments/{departmentID}/report", attendanceHandler.GetDepartmentReport)

					r.Post("/absences", attendanceHandler.MarkAbsent)
					r.Delete("/absences/{userID}/{date}", attendanceHandler.RevertAbsence)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/departments/{departmentID}", departmentHandler.Get)
		})
	})
	return r
}
