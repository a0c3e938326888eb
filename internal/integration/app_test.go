package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-system/internal/app"
	"github.com/metinatakli/movie-catalog-system/internal/repository"
	"github.com/metinatakli/movie-catalog-system/internal/storage"
	appvalidator "github.com/metinatakli/movie-catalog-system/internal/validator"
)

type TestApp struct {
	App     *app.Application
	DB      *pgxpool.Pool
	Storage *storage.DiskStorage
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	storageRoot, err := os.MkdirTemp("", "catalog-files")
	if err != nil {
		db.Close()
		return nil, err
	}
	fileStorage := storage.NewDiskStorage(storageRoot, "http://localhost:4000/static")

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		fileStorage,
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresMovieRepository(db, cfg.Catalog.CaseSensitiveSearch),
		repository.NewPostgresGenreRepository(db),
		repository.NewPostgresActorRepository(db),
		repository.NewPostgresMovieTheaterRepository(db),
		repository.NewPostgresRatingRepository(db),
	)

	return &TestApp{
		App:     application,
		DB:      db,
		Storage: fileStorage,
	}, nil
}
