package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/config"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/user"
	"github.com/cmlabs-hris/hris-geofence/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-geofence/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Health     HealthHandler
	Geofence   GeofenceHandler
	Attendance AttendanceHandler
	Calendar   CalendarHandler
	Settings   SettingsHandler
	Office     OfficeHandler
	Holiday    HolidayHandler
}

func NewRouter(cfg *config.Config, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-geofence"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", h.Health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	limiter := rateLimiter(cfg.HTTP.RateLimitPerMinute)

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/geofence", func(r chi.Router) {
				r.Use(limiter)
				r.Use(middleware.RequirePermission(user.PermissionGeofenceCheck))
				r.Post("/check", h.Geofence.Check)
				r.Get("/nearest", h.Geofence.Nearest)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(limiter)
				r.Use(middleware.RequirePermission(user.PermissionAttendanceEvaluate))
				r.Post("/check-in/evaluate", h.Attendance.EvaluateCheckIn)
				r.Post("/check-out/evaluate", h.Attendance.EvaluateCheckOut)
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionCalendarViewOwn))
				r.Get("/day", h.Calendar.Day)
				r.Get("/month", h.Calendar.Month)
				r.Get("/month/export", h.Calendar.Export)
			})

			r.Route("/settings", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionSettingsView)).Get("/effective", h.Settings.Effective)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionSettingsManage))
					r.Get("/global", h.Settings.GetGlobal)
					r.Put("/global", h.Settings.UpdateGlobal)
					r.Get("/departments", h.Settings.ListDepartments)
					r.Route("/departments/{name}", func(r chi.Router) {
						r.Get("/", h.Settings.GetDepartment)
						r.Put("/", h.Settings.UpdateDepartment)
						r.Delete("/", h.Settings.DeleteDepartment)
					})
				})
			})

			r.Route("/offices", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionOfficeManage))
				r.Get("/", h.Office.List)
				r.Post("/", h.Office.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Office.Get)
					r.Put("/", h.Office.Update)
					r.Delete("/", h.Office.Delete)
					r.Patch("/active", h.Office.SetActive)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.With(middleware.RequireManager).Get("/", h.Holiday.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionHolidayManage))
					r.Post("/", h.Holiday.Create)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})
		})
	})
	return r
}

// rateLimiter limits requests per client IP. A non-positive limit disables it.
func rateLimiter(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(perMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			response.TooManyRequests(w, "Too many requests, slow down")
		}),
	)
}
