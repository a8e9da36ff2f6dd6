package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/tokosakti/backoffice-go/internal/handler/http/middleware"
	"github.com/tokosakti/backoffice-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	env string,
	employeeHandler EmployeeHandler,
	salaryHandler SalaryHandler,
	kpiHandler KPIHandler,
	advanceHandler AdvanceHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tokosakti-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListActive)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
				})

				r.Route("/{employeeId}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)

					r.Route("/salary", func(r chi.Router) {
						r.Get("/current", salaryHandler.GetCurrent)

						// Admin only
						r.Group(func(r chi.Router) {
							r.Use(middleware.AdminOnly)
							r.Post("/", salaryHandler.SetConfiguration)
							r.Get("/history", salaryHandler.History)
						})
					})

					r.Route("/kpi", func(r chi.Router) {
						r.Get("/assignments", kpiHandler.GetEmployeeAssignments)
						r.Get("/results", kpiHandler.GetMonthlyResults)
						r.Get("/bonus", kpiHandler.GetMonthlyBonus)

						// Admin only
						r.Group(func(r chi.Router) {
							r.Use(middleware.AdminOnly)
							r.Post("/assignments", kpiHandler.AssignToEmployee)
						})
					})

					r.Route("/advances", func(r chi.Router) {
						r.Get("/", advanceHandler.ListByEmployee)
						r.Get("/total", advanceHandler.GetPeriodTotal)
					})
				})
			})

			r.Route("/salary-configurations", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Delete("/{id}", salaryHandler.Deactivate)
			})

			r.Route("/kpi", func(r chi.Router) {
				r.Route("/definitions", func(r chi.Router) {
					r.Get("/", kpiHandler.ListDefinitions)
					r.Get("/{id}", kpiHandler.GetDefinition)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/{id}/activate", kpiHandler.ActivateDefinition)
						r.Put("/{id}/deactivate", kpiHandler.DeactivateDefinition)
						r.Post("/", kpiHandler.CreateDefinition)
					})
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/assignments/{id}", kpiHandler.DeactivateAssignment)
					r.Post("/results", kpiHandler.RecordResult)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Post("/", advanceHandler.Request)
				r.Get("/{id}", advanceHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/pending", advanceHandler.ListPending)
					r.Put("/{id}/approve", advanceHandler.Approve)
					r.Put("/{id}/reject", advanceHandler.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/generate", payrollHandler.Generate)
				r.Get("/records", payrollHandler.ListRecords)
				r.Get("/records/{id}", payrollHandler.GetRecord)
				r.Put("/records/{id}/approve", payrollHandler.Approve)
				r.Put("/records/{id}/pay", payrollHandler.MarkAsPaid)
				r.Put("/records/{id}/cancel", payrollHandler.Cancel)
				r.Get("/summary", payrollHandler.GetSummary)
			})
		})
	})
	return r
}
