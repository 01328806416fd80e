package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/motorhub/motorhub-backend/api/routes"
	appointmentsvc "github.com/motorhub/motorhub-backend/internal/appointments"
	authsvc "github.com/motorhub/motorhub-backend/internal/auth"
	employeesvc "github.com/motorhub/motorhub-backend/internal/employees"
	reportsvc "github.com/motorhub/motorhub-backend/internal/reports"
	stocksvc "github.com/motorhub/motorhub-backend/internal/stock"
	usersvc "github.com/motorhub/motorhub-backend/internal/users"
	utilitysvc "github.com/motorhub/motorhub-backend/internal/utilities"
	vehiclesvc "github.com/motorhub/motorhub-backend/internal/vehicles"
	"github.com/motorhub/motorhub-backend/pkg/auth/session"
	"github.com/motorhub/motorhub-backend/pkg/config"
	"github.com/motorhub/motorhub-backend/pkg/db"
	"github.com/motorhub/motorhub-backend/pkg/logger"
	"github.com/motorhub/motorhub-backend/pkg/metrics"
	"github.com/motorhub/motorhub-backend/pkg/migrate"
	"github.com/motorhub/motorhub-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	services, err := buildServices(cfg, dbClient, sessionManager)
	if err != nil {
		logg.Error(context.Background(), "failed to build services", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, sessionManager, httpMetrics, services),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stop:
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}

func buildServices(cfg *config.Config, dbClient *db.Client, sessions *session.Manager) (routes.Services, error) {
	stockRepo := stocksvc.NewRepository(dbClient.DB())
	userRepo := usersvc.NewRepository(dbClient.DB())

	stockService, err := stocksvc.NewService(stockRepo, dbClient)
	if err != nil {
		return routes.Services{}, err
	}
	reportService, err := reportsvc.NewService(stockRepo)
	if err != nil {
		return routes.Services{}, err
	}
	vehicleService, err := vehiclesvc.NewService(vehiclesvc.NewRepository(dbClient.DB()), dbClient)
	if err != nil {
		return routes.Services{}, err
	}
	utilityService, err := utilitysvc.NewService(utilitysvc.NewRepository(dbClient.DB()))
	if err != nil {
		return routes.Services{}, err
	}
	appointmentService, err := appointmentsvc.NewService(appointmentsvc.NewRepository(dbClient.DB()))
	if err != nil {
		return routes.Services{}, err
	}
	employeeService, err := employeesvc.NewService(employeesvc.NewRepository(dbClient.DB()))
	if err != nil {
		return routes.Services{}, err
	}
	userService, err := usersvc.NewService(userRepo)
	if err != nil {
		return routes.Services{}, err
	}
	authService, err := authsvc.NewService(userRepo, sessions, cfg.JWT, cfg.Password)
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Stock:        stockService,
		Reports:      reportService,
		Vehicles:     vehicleService,
		Utilities:    utilityService,
		Appointments: appointmentService,
		Employees:    employeeService,
		Users:        userService,
		Auth:         authService,
	}, nil
}
