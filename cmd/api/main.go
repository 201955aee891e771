package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmlabs-hris/hris-geofence/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-geofence/internal/handler/http"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/database"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-geofence/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-geofence/internal/service/attendance"
	calendarService "github.com/cmlabs-hris/hris-geofence/internal/service/calendar"
	geofenceService "github.com/cmlabs-hris/hris-geofence/internal/service/geofence"
	holidayService "github.com/cmlabs-hris/hris-geofence/internal/service/holiday"
	officeService "github.com/cmlabs-hris/hris-geofence/internal/service/office"
	settingsService "github.com/cmlabs-hris/hris-geofence/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			slog.Error("Failed to apply schema", "error", err)
			os.Exit(1)
		}
	}

	officeRepo := postgresql.NewOfficeRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	resolver := geofenceService.NewResolver(officeRepo, cfg.Geofence.OfficeCacheTTL)
	officeSvc := officeService.NewOfficeService(officeRepo, resolver)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	classifierSvc := calendarService.NewClassifierService(holidayRepo, leaveRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	policySvc := attendanceService.NewPolicyService(settingsSvc, classifierSvc, resolver, cfg.Location())

	if err := settingsSvc.EnsureDefaults(ctx); err != nil {
		slog.Error("Failed to ensure default settings", "error", err)
		os.Exit(1)
	}

	scheduler := cron.NewScheduler(ctx)
	cron.NewGeofenceJobs(resolver, settingsSvc, cfg.Geofence.OfficeCacheTTL).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Health:     appHTTP.NewHealthHandler(db),
		Geofence:   appHTTP.NewGeofenceHandler(resolver, settingsSvc),
		Attendance: appHTTP.NewAttendanceHandler(policySvc),
		Calendar:   appHTTP.NewCalendarHandler(classifierSvc, settingsSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Office:     appHTTP.NewOfficeHandler(officeSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", srv.Addr, "timezone", cfg.App.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		slog.Info("Server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	case err := <-errCh:
		slog.Error("Server error", "error", err)
	}
}
