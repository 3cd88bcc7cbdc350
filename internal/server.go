package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gzclp/internal/auth"
	"github.com/2beens/gzclp/internal/config"
	"github.com/2beens/gzclp/internal/db"
	"github.com/2beens/gzclp/internal/gzclp/exercises"
	"github.com/2beens/gzclp/internal/gzclp/history"
	"github.com/2beens/gzclp/internal/gzclp/notify"
	"github.com/2beens/gzclp/internal/gzclp/program"
	"github.com/2beens/gzclp/internal/gzclp/progression"
	"github.com/2beens/gzclp/internal/gzclp/snapshot"
	"github.com/2beens/gzclp/internal/gzclp/syncer"
	"github.com/2beens/gzclp/internal/hevy"
	"github.com/2beens/gzclp/internal/middleware"
	"github.com/2beens/gzclp/internal/telemetry/metrics"
	"github.com/2beens/gzclp/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	gzclpAppSecret    string // used by the gzclp mobile client
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service
	admin        *auth.Admin

	exercisesRepo   *exercises.Repo
	progressionRepo *progression.Repo
	historyRepo     *history.Repo
	notifier        *notify.Notifier
	hevyClient      *hevy.Client
	syncService     *syncer.Syncer

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	HevyApiKey              string
	GzclpAppSecret          string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gzclp", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	admin := &auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}
	authService := auth.NewAuthService(admin, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gzclp-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   time.Duration(params.Config.HevyApiTimeoutSecs) * time.Second,
	}

	hevyClient := hevyClientSetup(params.Config, params.HevyApiKey, tracedHttpClient)

	exercisesRepo := exercises.NewRepo(dbPool)
	progressionRepo := progression.NewRepo(dbPool)
	historyRepo := history.NewRepo(dbPool)
	notifier := notify.NewNotifier(rdb)
	recorder := history.NewRecorder(historyRepo, exercisesRepo)

	syncService := syncer.NewSyncer(syncer.NewSyncerParams{
		Workouts:     hevyClient,
		Config:       exercisesRepo,
		Progression:  progressionRepo,
		History:      historyRepo,
		Recorder:     recorder,
		Notifier:     notifier,
		Metrics:      metricsManager,
		CycleTimeout: time.Duration(params.Config.SyncTimeoutSecs) * time.Second,
	})

	return &Server{
		config:         params.Config,
		dbPool:         dbPool,
		gzclpAppSecret: params.GzclpAppSecret,
		versionInfo:    params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		admin:        admin,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		exercisesRepo:   exercisesRepo,
		progressionRepo: progressionRepo,
		historyRepo:     historyRepo,
		notifier:        notifier,
		hevyClient:      hevyClient,
		syncService:     syncService,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func hevyClientSetup(cfg *config.Config, apiKey string, httpClient *http.Client) *hevy.Client {
	pageSize := cfg.HevyApiPageSize
	if pageSize <= 0 {
		pageSize = hevy.DefaultPageSize
	}
	return hevy.NewClient(cfg.HevyApiBaseURL, apiKey, pageSize, httpClient)
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gzclp-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authHandler := auth.NewHandler(s.authService, s.admin, s.versionInfo)
	authHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	programHandler := program.NewHandler()
	r.HandleFunc("/gzclp/program/days", programHandler.HandleListDays).Methods("GET", "OPTIONS").Name("program-days")
	r.HandleFunc("/gzclp/program/days/{day}", programHandler.HandleGetDay).Methods("GET", "OPTIONS").Name("program-day")

	exercisesHandler := exercises.NewHandler(s.exercisesRepo, s.progressionRepo, s.notifier, s.hevyClient)
	r.HandleFunc("/gzclp/routines", exercisesHandler.HandleListRoutines).Methods("GET", "OPTIONS").Name("list-routines")
	r.HandleFunc("/gzclp/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/gzclp/exercises", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/gzclp/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/gzclp/exercises/{id}", exercisesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/gzclp/exercises/{id}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	r.HandleFunc("/gzclp/exercises/{id}/role", exercisesHandler.HandleAssignRole).Methods("POST", "OPTIONS").Name("assign-role")
	r.HandleFunc("/gzclp/settings", exercisesHandler.HandleGetSettings).Methods("GET", "OPTIONS").Name("get-settings")
	r.HandleFunc("/gzclp/settings", exercisesHandler.HandleUpdateSettings).Methods("PUT", "OPTIONS").Name("update-settings")

	recorder := history.NewRecorder(s.historyRepo, s.exercisesRepo)
	progressionHandler := progression.NewHandler(s.progressionRepo, recorder, s.notifier, s.metricsManager)
	r.HandleFunc("/gzclp/progression", progressionHandler.HandleListEntries).Methods("GET", "OPTIONS").Name("list-progression")
	r.HandleFunc("/gzclp/progression/{key}", progressionHandler.HandleGetEntry).Methods("GET", "OPTIONS").Name("get-progression")
	r.HandleFunc("/gzclp/progression/{key}", progressionHandler.HandleUpdateEntry).Methods("PUT", "OPTIONS").Name("update-progression")
	r.HandleFunc("/gzclp/changes", progressionHandler.HandleListChanges).Methods("GET", "OPTIONS").Name("list-changes")
	r.HandleFunc("/gzclp/changes/apply-all", progressionHandler.HandleApplyAllChanges).Methods("POST", "OPTIONS").Name("apply-all-changes")
	r.HandleFunc("/gzclp/changes/{id}/apply", progressionHandler.HandleApplyChange).Methods("POST", "OPTIONS").Name("apply-change")
	r.HandleFunc("/gzclp/changes/{id}/reject", progressionHandler.HandleRejectChange).Methods("POST", "OPTIONS").Name("reject-change")

	historyHandler := history.NewHandler(s.historyRepo)
	r.HandleFunc("/gzclp/history", historyHandler.HandleList).Methods("GET", "OPTIONS").Name("list-history")

	syncHandler := syncer.NewHandler(s.syncService)
	// triggering a sync fans out to the hevy api, keep it rate limited
	syncRateLimit := middleware.RateLimit(
		reqRateLimiter, "trigger-sync", s.config.SyncRateLimitAllowedPerMin, s.metricsManager,
	)
	r.Handle("/gzclp/sync", syncRateLimit(http.HandlerFunc(syncHandler.HandleTrigger))).Methods("POST", "OPTIONS").Name("trigger-sync")
	r.HandleFunc("/gzclp/sync", syncHandler.HandleStatus).Methods("GET", "OPTIONS").Name("sync-status")
	r.HandleFunc("/gzclp/sync/cancel", syncHandler.HandleCancel).Methods("POST", "OPTIONS").Name("cancel-sync")

	snapshotHandler := snapshot.NewHandler(
		snapshot.NewService(s.exercisesRepo, s.progressionRepo, s.historyRepo, s.notifier),
	)
	r.HandleFunc("/gzclp/snapshot", snapshotHandler.HandleExport).Methods("GET", "OPTIONS").Name("export-snapshot")
	r.HandleFunc("/gzclp/snapshot", snapshotHandler.HandleImport).Methods("POST", "OPTIONS").Name("import-snapshot")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.gzclpAppSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, strconv.Itoa(s.config.PrometheusMetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("gzclp service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	// an in-flight sync cycle blocks shutdown until its state is persisted
	if s.syncService.CancelSync() {
		log.Debug("in-flight sync cycle cancelled")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
