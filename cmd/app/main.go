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

	"orderdesk/cmd"
	httpadapter "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/filestorage"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/jobs"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err = configs.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if configs.GeneratedJWTSecret {
		logger.Warn("JWT_SECRET is not set, using a random secret; tokens will not survive a restart")
	}

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := jobs.NewJobManager(app.CreateGetOverdueOrdersQueryHandler(), configs.OverdueScanSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = runWebServer(ctx, &app, configs, logger); err != nil {
		logger.Error("Web server stopped with error", "error", err)
	}
}

func runWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	storage, err := app.CreateFileStorage(ctx)
	if err != nil {
		return fmt.Errorf("file storage: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := httpadapter.NewMetrics(registry)
	if err != nil {
		return err
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:   app.CreateCreateOrderCommandHandler(),
		UpdateOrder:   app.CreateUpdateOrderCommandHandler(),
		DeleteOrder:   app.CreateDeleteOrderCommandHandler(),
		AttachProof:   app.CreateAttachProofImagesCommandHandler(),
		GetOrder:      app.CreateGetOrderQueryHandler(),
		ListOrders:    app.CreateListOrdersQueryHandler(),
		OverdueOrders: app.CreateGetOverdueOrdersQueryHandler(),
		Register:      app.CreateRegisterUserCommandHandler(),
		Login:         app.CreateLoginCommandHandler(),
		GetProfile:    app.CreateGetUserProfileQueryHandler(),
		EditProfile:   app.CreateProfileCommandHandler(),
	}, storage)

	routerConfig := httpadapter.RouterConfig{
		Logger:       logger,
		Tokens:       app.TokenService(),
		Metrics:      metrics,
		Gatherer:     registry,
		AllowOrigins: configs.CORSAllowOrigins,
	}
	if local, ok := storage.(*filestorage.LocalStorage); ok {
		routerConfig.UploadsDir = local.Root()
	}

	e, err := httpadapter.NewRouter(server, routerConfig)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting web server", "port", configs.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
