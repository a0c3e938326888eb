package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-system/internal/domain"
)

type PostgresMovieTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieTheaterRepository(db *pgxpool.Pool) *PostgresMovieTheaterRepository {
	return &PostgresMovieTheaterRepository{
		db: db,
	}
}

func (p *PostgresMovieTheaterRepository) GetAll(ctx context.Context) ([]domain.MovieTheater, error) {
	query := `SELECT id, name, ST_Y(location::geometry), ST_X(location::geometry)
		FROM movie_theaters
		ORDER BY name`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theaters := []domain.MovieTheater{}

	for rows.Next() {
		var theater domain.MovieTheater

		err := rows.Scan(
			&theater.ID,
			&theater.Name,
			&theater.Location.Latitude,
			&theater.Location.Longitude,
		)

		if err != nil {
			return nil, err
		}

		theaters = append(theaters, theater)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}

func (p *PostgresMovieTheaterRepository) GetById(ctx context.Context, id int) (*domain.MovieTheater, error) {
	query := `SELECT id, name, ST_Y(location::geometry), ST_X(location::geometry)
		FROM movie_theaters
		WHERE id = $1`

	var theater domain.MovieTheater

	err := p.db.QueryRow(ctx, query, id).Scan(
		&theater.ID,
		&theater.Name,
		&theater.Location.Latitude,
		&theater.Location.Longitude,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &theater, nil
}

func (p *PostgresMovieTheaterRepository) Create(ctx context.Context, theater *domain.MovieTheater) error {
	query := `INSERT INTO movie_theaters (name, location)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326))
		RETURNING id`

	return p.db.QueryRow(
		ctx,
		query,
		theater.Name,
		theater.Location.Longitude,
		theater.Location.Latitude).Scan(&theater.ID)
}

func (p *PostgresMovieTheaterRepository) Update(ctx context.Context, theater *domain.MovieTheater) error {
	query := `UPDATE movie_theaters
		SET name = $1, location = ST_SetSRID(ST_MakePoint($2, $3), 4326)
		WHERE id = $4`

	tag, err := p.db.Exec(
		ctx,
		query,
		theater.Name,
		theater.Location.Longitude,
		theater.Location.Latitude,
		theater.ID)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresMovieTheaterRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, "DELETE FROM movie_theaters WHERE id = $1", id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
