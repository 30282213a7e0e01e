package http

import (
	"log/slog"
	"os"

	"github.com/attendhq/rules-engine-go/internal/handler/http/middleware"
	"github.com/attendhq/rules-engine-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	frontendURL string,
	env string,
	employeeHandler EmployeeHandler,
	ruleHandler RuleHandler,
	payPeriodHandler PayPeriodHandler,
	attendanceHandler AttendanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "rules-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)

				r.Route("/{employeeID}", func(r chi.Router) {
					r.Route("/salary-rules", func(r chi.Router) {
						r.Get("/", ruleHandler.GetRuleSet)
						r.Put("/", ruleHandler.ApplyDirectives)
						r.Delete("/rules/{ruleID}", ruleHandler.DeleteRule)
					})

					r.Route("/pay-period", func(r chi.Router) {
						r.Get("/", payPeriodHandler.Get)
						r.Put("/", payPeriodHandler.Update)
					})

					r.Route("/attendance", func(r chi.Router) {
						r.Get("/classify", attendanceHandler.Classify)
						r.Get("/summary", attendanceHandler.MonthlySummary)
						r.Put("/punches/{date}", attendanceHandler.RecordPunches)
					})
				})
			})

			r.Post("/attendance/worked-time", attendanceHandler.WorkedTime)
		})
	})
	return r
}
