package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-system/internal/domain"
)

type PostgresRatingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRatingRepository(db *pgxpool.Pool) *PostgresRatingRepository {
	return &PostgresRatingRepository{
		db: db,
	}
}

// Upsert keys the rating on (movie_id, user_id): a repeated submission from
// the same user overwrites the rate instead of creating a second row.
func (p *PostgresRatingRepository) Upsert(ctx context.Context, rating domain.Rating) error {
	query := `INSERT INTO ratings (movie_id, user_id, rate)
		VALUES ($1, $2, $3)
		ON CONFLICT (movie_id, user_id) DO UPDATE SET rate = EXCLUDED.rate`

	_, err := p.db.Exec(ctx, query, rating.MovieID, rating.UserID, rating.Rate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresRatingRepository) GetMovieSummary(
	ctx context.Context,
	movieID, userID int,
) (domain.RatingSummary, error) {

	query := `SELECT
			COALESCE(AVG(rate), 0)::float8,
			COALESCE(MAX(rate) FILTER (WHERE user_id = $2), 0)
		FROM ratings
		WHERE movie_id = $1`

	var summary domain.RatingSummary

	err := p.db.QueryRow(ctx, query, movieID, userID).Scan(&summary.AverageVote, &summary.UserVote)
	if err != nil {
		return domain.RatingSummary{}, err
	}

	return summary, nil
}
