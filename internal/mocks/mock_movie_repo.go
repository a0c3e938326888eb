package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog-system/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc        func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error)
	GetByIdFunc       func(ctx context.Context, id int) (*domain.Movie, error)
	GetUpcomingFunc   func(ctx context.Context, limit int) ([]*domain.Movie, error)
	GetInTheatersFunc func(ctx context.Context, limit int) ([]*domain.Movie, error)
	CreateFunc        func(ctx context.Context, movie *domain.Movie, links domain.MovieLinks) error
	UpdateFunc        func(ctx context.Context, movie *domain.Movie, links domain.MovieLinks) error
	DeleteFunc        func(ctx context.Context, id int) error
}

func (m *MockMovieRepo) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) GetUpcoming(ctx context.Context, limit int) ([]*domain.Movie, error) {
	return m.GetUpcomingFunc(ctx, limit)
}

func (m *MockMovieRepo) GetInTheaters(ctx context.Context, limit int) ([]*domain.Movie, error) {
	return m.GetInTheatersFunc(ctx, limit)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie, links domain.MovieLinks) error {
	return m.CreateFunc(ctx, movie, links)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *domain.Movie, links domain.MovieLinks) error {
	return m.UpdateFunc(ctx, movie, links)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
