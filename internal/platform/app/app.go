package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/prajasetu/prajasetu/internal/platform/http"
	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/internal/platform/store/drivers/sqlite"
	"github.com/prajasetu/prajasetu/pkg/jwtx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the platform with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   jwtx.Signer
	verifier jwtx.Verifier

	registerService     *service.RegisterService
	tokenService        *service.TokenService
	inviteService       *service.InviteService
	eventService        *service.EventService
	mediaByteService    *service.MediaByteService
	commentService      *service.CommentService
	leaderService       *service.LeaderService
	locationService     *service.LocationService
	bannerService       *service.BannerService
	adminUserService    *service.AdminUserService
	settingsService     *service.SettingsService
	analyticsService    *service.AnalyticsService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "prajasetu",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initTokenKeys(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run seeds an empty database, starts background work and serves HTTP
// until shutdown is requested.
func (app *Application) Run() error {
	if err := app.bootstrapService.Run(context.Background()); err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	app.housekeepingService.Start()

	app.logger.Info("platform starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down platform...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("platform stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initTokenKeys builds the HS256 signer/verifier pair from the
// configured secret.
func (app *Application) initTokenKeys() error {
	signer, err := jwtx.NewSignerHS256([]byte(app.cfg.JWTSecret))
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256([]byte(app.cfg.JWTSecret), app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	app.signer = signer
	app.verifier = verifier
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.registerService = &service.RegisterService{Store: app.db}

	app.tokenService = &service.TokenService{
		Signer:    app.signer,
		Store:     app.db,
		Issuer:    app.cfg.Issuer,
		AccessTTL: app.cfg.AccessTokenTTL,
	}

	app.inviteService = &service.InviteService{Store: app.db}
	app.settingsService = &service.SettingsService{Store: app.db}
	app.eventService = &service.EventService{
		Store:    app.db,
		Settings: app.settingsService,
	}
	app.mediaByteService = &service.MediaByteService{Store: app.db}
	app.commentService = &service.CommentService{Store: app.db}
	app.leaderService = &service.LeaderService{Store: app.db}
	app.locationService = &service.LocationService{Store: app.db}
	app.bannerService = &service.BannerService{Store: app.db}
	app.adminUserService = &service.AdminUserService{Store: app.db}
	app.analyticsService = &service.AnalyticsService{Store: app.db}

	app.bootstrapService = &service.BootstrapService{
		Store:         app.db,
		AdminName:     app.cfg.AdminName,
		AdminMobile:   app.cfg.AdminMobile,
		AdminPassword: app.cfg.AdminPassword,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.RegisterService = app.registerService
	router.TokenService = app.tokenService
	router.InviteService = app.inviteService
	router.EventService = app.eventService
	router.MediaByteService = app.mediaByteService
	router.CommentService = app.commentService
	router.LeaderService = app.leaderService
	router.LocationService = app.locationService
	router.BannerService = app.bannerService
	router.AdminUserService = app.adminUserService
	router.SettingsService = app.settingsService
	router.AnalyticsService = app.analyticsService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
