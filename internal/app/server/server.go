package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrconsole/internal/domain/assistant"
	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/compliance"
	"hrconsole/internal/domain/directory"
	"hrconsole/internal/domain/engagement"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/domain/notifications"
	"hrconsole/internal/domain/payroll"
	"hrconsole/internal/domain/performance"
	"hrconsole/internal/domain/reports"
	"hrconsole/internal/domain/scheduling"
	"hrconsole/internal/domain/training"
	"hrconsole/internal/platform/ai"
	"hrconsole/internal/platform/cache"
	"hrconsole/internal/platform/config"
	"hrconsole/internal/platform/crypto"
	"hrconsole/internal/platform/db"
	"hrconsole/internal/platform/email"
	"hrconsole/internal/platform/jobs"
	"hrconsole/internal/platform/logging"
	"hrconsole/internal/platform/metrics"
	"hrconsole/internal/store"
	"hrconsole/internal/transport/http/api"
	adminhandler "hrconsole/internal/transport/http/handlers/admin"
	assistanthandler "hrconsole/internal/transport/http/handlers/assistant"
	authhandler "hrconsole/internal/transport/http/handlers/auth"
	compliancehandler "hrconsole/internal/transport/http/handlers/compliance"
	directoryhandler "hrconsole/internal/transport/http/handlers/directory"
	engagementhandler "hrconsole/internal/transport/http/handlers/engagement"
	leavehandler "hrconsole/internal/transport/http/handlers/leave"
	notificationshandler "hrconsole/internal/transport/http/handlers/notifications"
	payrollhandler "hrconsole/internal/transport/http/handlers/payroll"
	performancehandler "hrconsole/internal/transport/http/handlers/performance"
	reportshandler "hrconsole/internal/transport/http/handlers/reports"
	schedulinghandler "hrconsole/internal/transport/http/handlers/scheduling"
	traininghandler "hrconsole/internal/transport/http/handlers/training"
	"hrconsole/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Router  http.Handler
	Store   *store.Store
	Jobs    *jobs.Service
	Metrics *metrics.Collector

	pool      *pgxpool.Pool
	cache     *cache.RedisCache
	snapshots *snapshotter
}

type Option func(*options)

type options struct {
	logOutput io.Writer
	now       func() time.Time
}

// WithLogOutput redirects the process logger, mostly for tests.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// WithClock fixes the instant the seed data is generated around.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Run loads configuration, serves until SIGINT or SIGTERM and then drains
// in-flight requests before writing a final snapshot.
func Run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	app.Start(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("hr console listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	app.Logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// New builds the store, platform clients and every handler. Background jobs
// do not run until Start is called.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	o := options{logOutput: os.Stdout, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.New(o.logOutput, cfg.Environment)
	slog.SetDefault(logger)
	loc := cfg.Location()

	hash, err := auth.HashPassword(cfg.SeedPassword)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	app := &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store.New(store.Seed(o.now(), loc, hash)),
		Jobs:    jobs.New(),
		Metrics: metrics.New(),
	}

	if cfg.DatabaseURL != "" {
		if err := app.openSnapshots(ctx); err != nil {
			app.Close()
			return nil, err
		}
	}

	var assistantCache assistant.Cache
	if cfg.RedisAddr != "" {
		app.cache = cache.NewRedisCache(cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), "hrconsole:assistant:")
		assistantCache = app.cache
	}
	var generator assistant.TextGenerator
	if cfg.AssistantEnabled() {
		generator = ai.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	notifier := notifications.New(app.Store, email.New(cfg))
	notifier.EmailEnabled = cfg.EmailEnabled
	notifier.DefaultFrom = cfg.EmailFrom

	authService := auth.NewService(app.Store, cfg.JWTSecret, cfg.TokenTTL)
	directoryService := directory.NewService(app.Store)
	schedulingService := scheduling.NewService(app.Store, loc)
	leaveService := leave.NewService(app.Store, notifier)
	payrollService := payroll.NewService(app.Store, app.Jobs, notifier)
	trainingService := training.NewService(app.Store, notifier)
	performanceService := performance.NewService(app.Store, notifier)
	complianceService := compliance.NewService(app.Store)
	engagementService := engagement.NewService(app.Store, notifier)
	assistantService := assistant.NewService(app.Store, generator, assistantCache, cfg.AssistantCacheTTL)
	reportsService := reports.NewService(app.Store, complianceService, payrollService, loc)

	perms := auth.NewPermissionTable(app.Store)
	idem := middleware.NewIdempotencyStore(24 * time.Hour)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))
	router.Use(middleware.Metrics(app.Metrics))
	router.Use(chiMiddleware.CleanPath)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.IdempotencyHeader, "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Total-Count", "X-Request-ID", "Content-Disposition"},
		MaxAge:           300,
	}))
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", app.handleReady)
	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(app.Metrics.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret, authService))
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
		r.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))

		authhandler.NewHandler(authService, perms).RegisterRoutes(r)
		adminhandler.NewHandler(perms).RegisterRoutes(r)
		directoryhandler.NewHandler(directoryService, perms).RegisterRoutes(r)
		schedulinghandler.NewHandler(schedulingService, perms, loc).RegisterRoutes(r)
		leavehandler.NewHandler(leaveService, perms).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService, perms, idem, app.Metrics).RegisterRoutes(r)
		traininghandler.NewHandler(trainingService, perms).RegisterRoutes(r)
		performancehandler.NewHandler(performanceService, perms).RegisterRoutes(r)
		compliancehandler.NewHandler(complianceService, perms).RegisterRoutes(r)
		engagementhandler.NewHandler(engagementService, perms).RegisterRoutes(r)
		notificationshandler.NewHandler(notifier).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService, app.Jobs, perms).RegisterRoutes(r)
		assistanthandler.NewHandler(assistantService, perms, app.Metrics).RegisterRoutes(r)
	})
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusNotFound, "not_found", "route not found", middleware.GetRequestID(r.Context()))
	})

	app.Router = router
	return app, nil
}

// openSnapshots connects to Postgres, applies migrations and restores the
// newest snapshot over the seed data when one exists.
func (a *App) openSnapshots(ctx context.Context) error {
	pool, err := db.Connect(ctx, a.Config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	a.pool = pool
	if err := db.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	sealer, err := crypto.New(a.Config.DataEncryptionKey)
	if err != nil {
		return err
	}
	if !sealer.Configured() {
		a.Logger.Warn("DATA_ENCRYPTION_KEY not set; snapshots are stored unencrypted")
	}
	repo := db.NewSnapshotRepo(pool, sealer)
	payload, ok, err := repo.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if ok {
		if err := a.Store.Restore(payload); err != nil {
			return fmt.Errorf("restore snapshot: %w", err)
		}
		a.Logger.Info("restored store snapshot", "version", a.Store.Version())
	}
	a.snapshots = newSnapshotter(a.Store, repo, a.Metrics)
	return nil
}

// Start launches the job worker and the periodic snapshot when configured.
func (a *App) Start(ctx context.Context) {
	if a.snapshots != nil {
		a.Jobs.Every(jobs.JobSnapshot, a.Config.SnapshotInterval, a.snapshots.save)
	}
	a.Jobs.Start(ctx)
}

// Close writes a last snapshot and releases external clients.
func (a *App) Close() {
	if a.snapshots != nil && a.pool != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := a.Jobs.RunNow(ctx, jobs.JobSnapshot, a.snapshots.save); err != nil {
			a.Logger.Warn("final snapshot failed", "err", err)
		}
		cancel()
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.Logger.Warn("redis close failed", "err", err)
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *App) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if a.pool != nil {
		if err := a.pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
	}
	if a.cache != nil {
		if err := a.cache.Ping(ctx); err != nil {
			http.Error(w, "cache not ready", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
