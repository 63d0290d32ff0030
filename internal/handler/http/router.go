package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/user"
	"github.com/staffsync-hq/staffsync-backend-go/internal/handler/http/middleware"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	employeeHandler EmployeeHandler,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffsync"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})

			// Authenticated
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)

				// Account provisioning is admin only
				r.With(middleware.AdminOnly).Post("/register", authHandler.Register)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/my", attendanceHandler.GetMyAttendance)
				r.Get("/my/summary", attendanceHandler.MyMonthlySummary)

				// HR and admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", attendanceHandler.ListAttendance)
					r.Get("/{id}", attendanceHandler.GetAttendance)
					r.With(middleware.RequirePermission(user.PermissionAttendanceRegularize)).
						Post("/regularize", attendanceHandler.Regularize)
					r.Get("/summary/{employeeID}", attendanceHandler.MonthlySummary)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/types", leaveHandler.ListLeaveTypes)
				r.Get("/balances/my", leaveHandler.GetMyBalances)
				r.Post("/applications", leaveHandler.Apply)
				r.Get("/applications/my", leaveHandler.ListMyApplications)
				r.Get("/applications/{id}", leaveHandler.GetApplication)

				// HR and admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/applications", leaveHandler.ListApplications)
					r.Post("/applications/{id}/approve", leaveHandler.Approve)
					r.Post("/applications/{id}/reject", leaveHandler.Reject)
					r.Post("/quotas", leaveHandler.SetQuota)
					r.Get("/balances/{employeeID}", leaveHandler.GetBalances)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/types", leaveHandler.CreateLeaveType)
					r.Put("/types/{id}", leaveHandler.UpdateLeaveType)
					r.Delete("/types/{id}", leaveHandler.DeleteLeaveType)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", payrollHandler.ListMy)

				// HR and admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", payrollHandler.Generate)
					r.Get("/", payrollHandler.List)
					r.Get("/summary", payrollHandler.Summary)
					r.Get("/{id}", payrollHandler.Get)
					r.With(middleware.RequirePermission(user.PermissionPayrollMarkPaid)).
						Post("/{id}/pay", payrollHandler.MarkPaid)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
				})
			})
		})
	})
	return r
}
