package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog-system/internal/domain"
)

type MockMovieTheaterRepo struct {
	domain.MovieTheaterRepository
	GetAllFunc  func(ctx context.Context) ([]domain.MovieTheater, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.MovieTheater, error)
	CreateFunc  func(ctx context.Context, theater *domain.MovieTheater) error
	UpdateFunc  func(ctx context.Context, theater *domain.MovieTheater) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockMovieTheaterRepo) GetAll(ctx context.Context) ([]domain.MovieTheater, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieTheaterRepo) GetById(ctx context.Context, id int) (*domain.MovieTheater, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieTheaterRepo) Create(ctx context.Context, theater *domain.MovieTheater) error {
	return m.CreateFunc(ctx, theater)
}

func (m *MockMovieTheaterRepo) Update(ctx context.Context, theater *domain.MovieTheater) error {
	return m.UpdateFunc(ctx, theater)
}

func (m *MockMovieTheaterRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
