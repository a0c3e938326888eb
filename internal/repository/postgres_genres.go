package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-system/internal/domain"
)

type PostgresGenreRepository struct {
	db *pgxpool.Pool
}

func NewPostgresGenreRepository(db *pgxpool.Pool) *PostgresGenreRepository {
	return &PostgresGenreRepository{
		db: db,
	}
}

func (p *PostgresGenreRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination,
) ([]domain.Genre, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(), id, name
		FROM genres
		ORDER BY name
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	genres := []domain.Genre{}

	for rows.Next() {
		var genre domain.Genre

		if err := rows.Scan(&totalRecords, &genre.ID, &genre.Name); err != nil {
			return nil, nil, err
		}

		genres = append(genres, genre)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	// A page past the end returns no rows, which also loses the window
	// total. Recount so callers still see the true total.
	if len(genres) == 0 && pagination.Offset() > 0 {
		if err := p.db.QueryRow(ctx, "SELECT count(*) FROM genres").Scan(&totalRecords); err != nil {
			return nil, nil, err
		}
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return genres, metadata, nil
}

func (p *PostgresGenreRepository) GetAllSorted(ctx context.Context) ([]domain.Genre, error) {
	rows, err := p.db.Query(ctx, "SELECT id, name FROM genres ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []domain.Genre{}

	for rows.Next() {
		var genre domain.Genre

		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, err
		}

		genres = append(genres, genre)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return genres, nil
}

func (p *PostgresGenreRepository) GetById(ctx context.Context, id int) (*domain.Genre, error) {
	var genre domain.Genre

	err := p.db.QueryRow(ctx, "SELECT id, name FROM genres WHERE id = $1", id).
		Scan(&genre.ID, &genre.Name)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &genre, nil
}

func (p *PostgresGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	err := p.db.QueryRow(ctx, "INSERT INTO genres (name) VALUES ($1) RETURNING id", genre.Name).
		Scan(&genre.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrUniqueViolation
		}

		return err
	}

	return nil
}

func (p *PostgresGenreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	tag, err := p.db.Exec(ctx, "UPDATE genres SET name = $1 WHERE id = $2", genre.Name, genre.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrUniqueViolation
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresGenreRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, "DELETE FROM genres WHERE id = $1", id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
