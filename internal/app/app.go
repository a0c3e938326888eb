package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-system/internal/domain"
	"github.com/metinatakli/movie-catalog-system/internal/repository"
	"github.com/metinatakli/movie-catalog-system/internal/storage"
	appvalidator "github.com/metinatakli/movie-catalog-system/internal/validator"
	"github.com/metinatakli/movie-catalog-system/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
)

var (
	version = vcs.Version()
)

const serviceName = "movie-catalog-api"

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	fileStorage    storage.FileStorage

	userRepo    domain.UserRepository
	movieRepo   domain.MovieRepository
	genreRepo   domain.GenreRepository
	actorRepo   domain.ActorRepository
	theaterRepo domain.MovieTheaterRepository
	ratingRepo  domain.RatingRepository
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	DB               DBConfig
	Redis            RedisConfig
	Storage          StorageConfig
	Catalog          CatalogConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type StorageConfig struct {
	Root    string
	BaseURL string
}

type CatalogConfig struct {
	// CaseSensitiveSearch controls whether the title filter matches with
	// LIKE instead of ILIKE. The original deployment depended on store
	// collation, so this stays an explicit knob.
	CaseSensitiveSearch bool
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 4000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.Storage.Root, "storage-root", "./data/files", "File storage root directory")
	flag.StringVar(&cfg.Storage.BaseURL, "storage-base-url", "http://localhost:4000/static", "Base URL of stored file references")

	flag.BoolVar(&cfg.Catalog.CaseSensitiveSearch, "catalog-case-sensitive-search", false, "Match movie titles case-sensitively")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app, err := NewApplication(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.Serve()
}

func NewApplication(cfg Config, logger *slog.Logger) (*Application, error) {
	db, err := NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	app := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		NewSessionManager(redisClient),
		storage.NewDiskStorage(cfg.Storage.Root, cfg.Storage.BaseURL),
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresMovieRepository(db, cfg.Catalog.CaseSensitiveSearch),
		repository.NewPostgresGenreRepository(db),
		repository.NewPostgresActorRepository(db),
		repository.NewPostgresMovieTheaterRepository(db),
		repository.NewPostgresRatingRepository(db),
	)

	return app, nil
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	sessionManager *scs.SessionManager,
	fileStorage storage.FileStorage,
	userRepo domain.UserRepository,
	movieRepo domain.MovieRepository,
	genreRepo domain.GenreRepository,
	actorRepo domain.ActorRepository,
	theaterRepo domain.MovieTheaterRepository,
	ratingRepo domain.RatingRepository,
) *Application {
	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redisClient,
		validator:      validator,
		sessionManager: sessionManager,
		fileStorage:    fileStorage,
		userRepo:       userRepo,
		movieRepo:      movieRepo,
		genreRepo:      genreRepo,
		actorRepo:      actorRepo,
		theaterRepo:    theaterRepo,
		ratingRepo:     ratingRepo,
	}
}

func (app *Application) Close() {
	app.db.Close()
	app.redis.Close()
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) Serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.authenticate)

	r.Get("/health", app.GetHealth)

	r.Post("/auth/register", app.RegisterUser)
	r.Post("/auth/login", app.LoginUser)
	r.Post("/auth/logout", app.LogoutUser)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Get("/landing", app.GetLandingPage)
		r.Get("/postget", app.GetMovieForm)
		r.Get("/{id}", app.GetMovie)
		r.Get("/{id}/putget", app.GetMovieEditForm)
		r.Post("/", app.CreateMovie)
		r.Put("/{id}", app.UpdateMovie)
		r.Delete("/{id}", app.DeleteMovie)
	})

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", app.GetGenres)
		r.Get("/all", app.GetAllGenres)
		r.Get("/{id}", app.GetGenre)
		r.Post("/", app.CreateGenre)
		r.Put("/{id}", app.UpdateGenre)
		r.Delete("/{id}", app.DeleteGenre)
	})

	r.Route("/actors", func(r chi.Router) {
		r.Get("/", app.GetActors)
		r.Get("/{id}", app.GetActor)
		r.Post("/", app.CreateActor)
		r.Put("/{id}", app.UpdateActor)
		r.Delete("/{id}", app.DeleteActor)
	})

	r.Route("/movietheaters", func(r chi.Router) {
		r.Get("/", app.GetMovieTheaters)
		r.Get("/{id}", app.GetMovieTheater)
		r.Post("/", app.CreateMovieTheater)
		r.Put("/{id}", app.UpdateMovieTheater)
		r.Delete("/{id}", app.DeleteMovieTheater)
	})

	r.With(app.requireAuthentication).Post("/ratings", app.RateMovie)

	return r
}
