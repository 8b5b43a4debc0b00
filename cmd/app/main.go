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
	"time"

	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const serviceName = "fooddelivery"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, configs.OtelExporterEndpoint, serviceName, configs.ServiceVersion)
	if err != nil {
		log.Fatalf("Error initializing tracer: %v", err)
	}
	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider(serviceName, configs.ServiceVersion)
	if err != nil {
		log.Fatalf("Error initializing metrics: %v", err)
	}

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e, err := newEchoServer(app, metricsHandler, logger)
	if err != nil {
		log.Fatalf("Error building http server: %v", err)
	}
	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			logger.Error("server error", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	jobManager.StopAll()
	if err = app.Close(); err != nil {
		logger.Error("closing publishers", "error", err)
	}
	if err = shutdownMeter(shutdownCtx); err != nil {
		logger.Error("meter shutdown", "error", err)
	}
	if err = shutdownTracer(shutdownCtx); err != nil {
		logger.Error("tracer shutdown", "error", err)
	}
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	sqlDB, err := telemetry.OpenDB("pgx", configs.DSN())
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if configs.DBAutoMigrate {
		if err = postgres.AutoMigrate(gormDB); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}
	return gormDB, nil
}

func newEchoServer(app *cmd.CompositionRoot, metrics http.Handler, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(serviceName)))

	e.GET("/health", httpin.Health)
	e.GET("/metrics", echo.WrapHandler(metrics))
	e.GET("/ws", echo.WrapHandler(app.Hub()))

	if err := httpin.RegisterDocs(e); err != nil {
		return nil, err
	}

	server := httpin.NewServer(app.CreateHTTPHandlers(), logger)
	if err := server.RegisterRoutes(e, app.Verifier()); err != nil {
		return nil, err
	}
	return e, nil
}
