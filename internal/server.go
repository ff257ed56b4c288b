package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/samuelassuncao1/fitprogress/internal/config"
	"github.com/samuelassuncao1/fitprogress/internal/db"
	"github.com/samuelassuncao1/fitprogress/internal/fitness/history"
	"github.com/samuelassuncao1/fitprogress/internal/fitness/progress"
	"github.com/samuelassuncao1/fitprogress/internal/fitness/resttimer"
	"github.com/samuelassuncao1/fitprogress/internal/fitness/sessions"
	"github.com/samuelassuncao1/fitprogress/internal/fitness/workouts"
	"github.com/samuelassuncao1/fitprogress/internal/localstore"
	"github.com/samuelassuncao1/fitprogress/internal/middleware"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/metrics"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"
	"github.com/samuelassuncao1/fitprogress/pkg"

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
)

// workoutsStorage and sessionsStorage are the persistence gateway capability
// sets: one interface, two interchangeable backends, selected at startup by
// configuration.
type workoutsStorage interface {
	ListForOwner(ctx context.Context, ownerID string) ([]workouts.Workout, error)
	GetWorkout(ctx context.Context, id string) (*workouts.Workout, error)
	AddWorkout(ctx context.Context, workout workouts.Workout) (*workouts.Workout, error)
	RenameWorkout(ctx context.Context, id, name string) error
	AddExercise(ctx context.Context, exercise workouts.Exercise) (*workouts.Exercise, error)
	UpdateExercise(ctx context.Context, exercise workouts.Exercise) error
	DeleteExercise(ctx context.Context, id string) error
}

type sessionsStorage interface {
	AddSession(ctx context.Context, session sessions.Session) (*sessions.Session, error)
	MarkCompleted(ctx context.Context, id string) error
	GetSession(ctx context.Context, id string) (*sessions.Session, error)
	ListCompletedForOwner(ctx context.Context, ownerID string) ([]sessions.Session, error)
	AddLog(ctx context.Context, exerciseLog sessions.ExerciseLog) (*sessions.ExerciseLog, error)
	LogsForSession(ctx context.Context, sessionID string) ([]sessions.ExerciseLog, error)
	LogsForExercise(ctx context.Context, exerciseID string) ([]sessions.ExerciseLog, error)
	LogsForOwner(ctx context.Context, ownerID string) ([]sessions.ExerciseLog, error)
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config

	// one of the two is set, per config.StorageType
	dbPool     *pgxpool.Pool
	localStore *localstore.Store

	workoutsRepo workoutsStorage
	sessionsRepo sessionsStorage

	redisClient  *redis.Client
	timerManager *resttimer.Manager

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(ctx context.Context, params NewServerParams) (*Server, error) {
	cfg := params.Config

	s := &Server{
		config:       cfg,
		versionInfo:  params.VersionInfo,
		timerManager: resttimer.NewManager(cfg.DefaultRestSeconds),
	}

	var promCollectors []prometheus.Collector
	switch cfg.StorageType {
	case config.StorageTypePostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}

		s.dbPool = dbPool
		s.workoutsRepo = workouts.NewRepo(dbPool)
		s.sessionsRepo = sessions.NewRepo(dbPool)
		promCollectors = append(promCollectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	case config.StorageTypeLocal:
		store, err := localstore.NewStore(cfg.LocalStorePath)
		if err != nil {
			return nil, fmt.Errorf("new local store: %w", err)
		}
		s.localStore = store
		s.workoutsRepo = workouts.NewLocalRepo(store)
		s.sessionsRepo = sessions.NewLocalRepo(store)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}

	s.promRegistry = metrics.SetupPrometheus(promCollectors...)
	s.metricsManager = metrics.NewManager("fitprogress", "backend", s.promRegistry)
	s.metricsManager.GaugeLifeSignal.Set(0)

	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
		s.redisClient = rdb
	} else {
		log.Warn("redis host not set, progress cache and rate limiting disabled")
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitprogress-backend")
	if err != nil {
		return nil, err
	}
	s.otelShutdown = otelShutdown

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitprogress-router"))

	workoutsHandler := workouts.NewHandler(
		s.workoutsRepo,
		workouts.NewSeeder(s.workoutsRepo),
		s.metricsManager,
	)
	r.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleRename).Methods("PUT", "OPTIONS").Name("rename-workout")
	r.HandleFunc("/workouts/{id}/exercises", workoutsHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-exercise")
	r.HandleFunc("/exercises/{id}", workoutsHandler.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", workoutsHandler.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	var progressCache *progress.Cache
	if s.redisClient != nil {
		progressCache = progress.NewCache(s.redisClient)
	}

	recorder := sessions.NewRecorder(s.sessionsRepo, s.workoutsRepo)
	sessionsHandler := sessions.NewHandler(recorder, s.sessionsRepo, s.metricsManager, progressCache)

	recordSession := http.HandlerFunc(sessionsHandler.HandleRecord)
	if s.redisClient != nil {
		reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
		r.Handle("/sessions", middleware.RateLimit(
			reqRateLimiter,
			"record-session",
			s.config.SessionsRateLimitPerMin,
			s.metricsManager,
		)(recordSession)).Methods("POST", "OPTIONS").Name("record-session")
	} else {
		r.Handle("/sessions", recordSession).Methods("POST", "OPTIONS").Name("record-session")
	}
	r.HandleFunc("/sessions/{id}", sessionsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/exercises/{id}/logs", sessionsHandler.HandleExerciseLogs).Methods("GET", "OPTIONS").Name("exercise-logs")

	analyzer := progress.NewAnalyzer(s.sessionsRepo, s.workoutsRepo, s.config.DefaultRestSeconds)
	progressHandler := progress.NewHandler(analyzer, progressCache)
	r.HandleFunc("/progress", progressHandler.HandleReport).Methods("GET", "OPTIONS").Name("progress")

	historyHandler := history.NewHandler(history.NewGrouper(s.sessionsRepo))
	r.HandleFunc("/history", historyHandler.HandleList).Methods("GET", "OPTIONS").Name("history")

	r.HandleFunc("/version", s.handleVersion).Methods("GET", "OPTIONS").Name("version")

	timerHandler := resttimer.NewHandler(s.timerManager)
	r.HandleFunc("/timer", timerHandler.HandleStatus).Methods("GET", "OPTIONS").Name("timer-status")
	r.HandleFunc("/timer/start", timerHandler.HandleStart).Methods("POST", "OPTIONS").Name("timer-start")
	r.HandleFunc("/timer/pause", timerHandler.HandlePause).Methods("POST", "OPTIONS").Name("timer-pause")
	r.HandleFunc("/timer/reset", timerHandler.HandleReset).Methods("POST", "OPTIONS").Name("timer-reset")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.ResolveOwner(s.config.DefaultOwnerID))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
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
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("fitprogress service, listen and serve: %s", err)
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
	s.timerManager.StopAll()

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

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

// handleVersion returns the commit hash the running binary was built from.
func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, s.versionInfo)
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Sub(1)
	}
}
