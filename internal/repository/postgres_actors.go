package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-system/internal/domain"
)

type PostgresActorRepository struct {
	db *pgxpool.Pool
}

func NewPostgresActorRepository(db *pgxpool.Pool) *PostgresActorRepository {
	return &PostgresActorRepository{
		db: db,
	}
}

func (p *PostgresActorRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination,
) ([]domain.Actor, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(), id, name, date_of_birth, biography, picture
		FROM actors
		ORDER BY name
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	actors := []domain.Actor{}

	for rows.Next() {
		var actor domain.Actor

		err := rows.Scan(
			&totalRecords,
			&actor.ID,
			&actor.Name,
			&actor.DateOfBirth,
			&actor.Biography,
			&actor.Picture,
		)

		if err != nil {
			return nil, nil, err
		}

		actors = append(actors, actor)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	// A page past the end returns no rows, which also loses the window
	// total. Recount so callers still see the true total.
	if len(actors) == 0 && pagination.Offset() > 0 {
		if err := p.db.QueryRow(ctx, "SELECT count(*) FROM actors").Scan(&totalRecords); err != nil {
			return nil, nil, err
		}
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return actors, metadata, nil
}

func (p *PostgresActorRepository) GetById(ctx context.Context, id int) (*domain.Actor, error) {
	query := `SELECT id, name, date_of_birth, biography, picture FROM actors WHERE id = $1`

	var actor domain.Actor

	err := p.db.QueryRow(ctx, query, id).Scan(
		&actor.ID,
		&actor.Name,
		&actor.DateOfBirth,
		&actor.Biography,
		&actor.Picture,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &actor, nil
}

func (p *PostgresActorRepository) Create(ctx context.Context, actor *domain.Actor) error {
	query := `INSERT INTO actors (name, date_of_birth, biography, picture)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return p.db.QueryRow(
		ctx,
		query,
		actor.Name,
		actor.DateOfBirth,
		actor.Biography,
		actor.Picture).Scan(&actor.ID)
}

func (p *PostgresActorRepository) Update(ctx context.Context, actor *domain.Actor) error {
	query := `UPDATE actors
		SET name = $1, date_of_birth = $2, biography = $3, picture = $4
		WHERE id = $5`

	tag, err := p.db.Exec(
		ctx,
		query,
		actor.Name,
		actor.DateOfBirth,
		actor.Biography,
		actor.Picture,
		actor.ID)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresActorRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, "DELETE FROM actors WHERE id = $1", id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
