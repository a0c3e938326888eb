package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-system/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool

	// caseSensitiveSearch selects LIKE over ILIKE for title filtering.
	caseSensitiveSearch bool
}

func NewPostgresMovieRepository(db *pgxpool.Pool, caseSensitiveSearch bool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db:                  db,
		caseSensitiveSearch: caseSensitiveSearch,
	}
}

// GetAll applies the filter criteria conjunctively and pages the result.
// The total count is computed over the filtered set, before slicing, in the
// same query via a window function.
func (p *PostgresMovieRepository) GetAll(
	ctx context.Context,
	filters domain.MovieFilters,
) ([]*domain.Movie, *domain.Metadata, error) {

	conditions := []string{"TRUE"}
	args := []any{}

	if filters.Title != "" {
		op := "ILIKE"
		if p.caseSensitiveSearch {
			op = "LIKE"
		}
		args = append(args, "%"+filters.Title+"%")
		conditions = append(conditions, fmt.Sprintf("title %s $%d", op, len(args)))
	}

	if filters.InTheaters {
		conditions = append(conditions, "in_theaters")
	}

	if filters.UpcomingOnly {
		// "today" is the moment the request is processed, never cached
		args = append(args, time.Now())
		conditions = append(conditions, fmt.Sprintf("release_date > $%d", len(args)))
	}

	if filters.GenreID != 0 {
		args = append(args, filters.GenreID)
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM movie_genres mg WHERE mg.movie_id = movies.id AND mg.genre_id = $%d)",
			len(args)))
	}

	filterWhere := strings.Join(conditions, " AND ")
	filterArgs := args

	args = append(args, filters.Limit(), filters.Offset())

	query := fmt.Sprintf(`SELECT count(*) OVER(), id, title, summary, release_date, in_theaters, poster
		FROM movies
		WHERE %s
		ORDER BY title
		LIMIT $%d OFFSET $%d`,
		filterWhere, len(args)-1, len(args))

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.Summary,
			&movie.ReleaseDate,
			&movie.InTheaters,
			&movie.Poster,
		)

		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	// A page past the end returns no rows, which also loses the window
	// total. Recount the filtered set so callers still see the true total.
	if len(movies) == 0 && filters.Offset() > 0 {
		countQuery := fmt.Sprintf("SELECT count(*) FROM movies WHERE %s", filterWhere)

		if err := p.db.QueryRow(ctx, countQuery, filterArgs...).Scan(&totalRecords); err != nil {
			return nil, nil, err
		}
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return movies, metadata, nil
}

// GetById materializes the full aggregate: the movie row plus its genre,
// theater and cast collections. Missing collections come back as empty
// slices, never nil.
func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `
		SELECT
			m.id, m.title, m.summary, m.release_date, m.in_theaters, m.poster,
			COALESCE(g.genres, '[]'),
			COALESCE(t.theaters, '[]'),
			COALESCE(c.cast_members, '[]')
		FROM movies m
		LEFT JOIN LATERAL (
			SELECT jsonb_agg(
				jsonb_build_object('id', ge.id, 'name', ge.name)
			) AS genres
			FROM movie_genres mg
			JOIN genres ge ON ge.id = mg.genre_id
			WHERE mg.movie_id = m.id
		) g ON true
		LEFT JOIN LATERAL (
			SELECT jsonb_agg(
				jsonb_build_object(
					'id', th.id,
					'name', th.name,
					'location', jsonb_build_object(
						'latitude', ST_Y(th.location::geometry),
						'longitude', ST_X(th.location::geometry)
					)
				)
			) AS theaters
			FROM movie_theater_movies mt
			JOIN movie_theaters th ON th.id = mt.movie_theater_id
			WHERE mt.movie_id = m.id
		) t ON true
		LEFT JOIN LATERAL (
			SELECT jsonb_agg(
				jsonb_build_object(
					'actorId', ma.actor_id,
					'name', a.name,
					'picture', a.picture,
					'character', ma.character_name,
					'order', ma.ord
				)
			) AS cast_members
			FROM movie_actors ma
			JOIN actors a ON a.id = ma.actor_id
			WHERE ma.movie_id = m.id
		) c ON true
		WHERE m.id = $1
	`

	var movie domain.Movie
	var genresJson, theatersJson, castJson json.RawMessage

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Summary,
		&movie.ReleaseDate,
		&movie.InTheaters,
		&movie.Poster,
		&genresJson,
		&theatersJson,
		&castJson,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	movie.Genres = []domain.Genre{}
	movie.Theaters = []domain.MovieTheater{}
	movie.Cast = []domain.CastMember{}

	if err := json.Unmarshal(genresJson, &movie.Genres); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(theatersJson, &movie.Theaters); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(castJson, &movie.Cast); err != nil {
		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) GetUpcoming(ctx context.Context, limit int) ([]*domain.Movie, error) {
	query := `SELECT id, title, summary, release_date, in_theaters, poster
		FROM movies
		WHERE release_date > $1
		ORDER BY release_date
		LIMIT $2`

	return p.queryMovies(ctx, query, time.Now(), limit)
}

func (p *PostgresMovieRepository) GetInTheaters(ctx context.Context, limit int) ([]*domain.Movie, error) {
	query := `SELECT id, title, summary, release_date, in_theaters, poster
		FROM movies
		WHERE in_theaters
		ORDER BY release_date
		LIMIT $1`

	return p.queryMovies(ctx, query, limit)
}

func (p *PostgresMovieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]*domain.Movie, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Summary,
			&movie.ReleaseDate,
			&movie.InTheaters,
			&movie.Poster,
		)

		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie, links domain.MovieLinks) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO movies (title, summary, release_date, in_theaters, poster)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`

		err := tx.QueryRow(
			ctx,
			query,
			movie.Title,
			movie.Summary,
			movie.ReleaseDate,
			movie.InTheaters,
			movie.Poster).Scan(&movie.ID)

		if err != nil {
			return err
		}

		return insertMovieLinks(ctx, tx, movie.ID, links)
	})
}

// Update overwrites the movie row and replaces all three linking sets as a
// whole (delete all, then insert the new sets). Associations are never
// reconciled incrementally; callers rely on the order reset this implies.
func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie, links domain.MovieLinks) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `UPDATE movies
			SET title = $1, summary = $2, release_date = $3, in_theaters = $4, poster = $5
			WHERE id = $6`

		tag, err := tx.Exec(
			ctx,
			query,
			movie.Title,
			movie.Summary,
			movie.ReleaseDate,
			movie.InTheaters,
			movie.Poster,
			movie.ID)

		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		for _, table := range []string{"movie_genres", "movie_actors", "movie_theater_movies"} {
			_, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE movie_id = $1", table), movie.ID)
			if err != nil {
				return err
			}
		}

		return insertMovieLinks(ctx, tx, movie.ID, links)
	})
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	// linking rows go with the movie via ON DELETE CASCADE
	tag, err := p.db.Exec(ctx, "DELETE FROM movies WHERE id = $1", id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// insertMovieLinks bulk-inserts the linking rows. A foreign key violation
// means the caller referenced a genre, theater or actor that does not exist,
// and surfaces as ErrRecordNotFound.
func insertMovieLinks(ctx context.Context, tx pgx.Tx, movieID int, links domain.MovieLinks) error {
	if len(links.Genres) > 0 {
		rows := make([][]any, 0, len(links.Genres))
		for _, g := range links.Genres {
			rows = append(rows, []any{movieID, g.GenreID})
		}

		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"movie_genres"},
			[]string{"movie_id", "genre_id"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return mapLinkError(err)
		}
	}

	if len(links.Theaters) > 0 {
		rows := make([][]any, 0, len(links.Theaters))
		for _, t := range links.Theaters {
			rows = append(rows, []any{t.MovieTheaterID, movieID})
		}

		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"movie_theater_movies"},
			[]string{"movie_theater_id", "movie_id"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return mapLinkError(err)
		}
	}

	if len(links.Cast) > 0 {
		rows := make([][]any, 0, len(links.Cast))
		for _, c := range links.Cast {
			rows = append(rows, []any{movieID, c.ActorID, c.Character, c.Order})
		}

		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"movie_actors"},
			[]string{"movie_id", "actor_id", "character_name", "ord"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return mapLinkError(err)
		}
	}

	return nil
}

func mapLinkError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return domain.ErrRecordNotFound
	}

	return err
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
