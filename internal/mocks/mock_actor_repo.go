package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog-system/internal/domain"
)

type MockActorRepo struct {
	domain.ActorRepository
	GetAllFunc  func(ctx context.Context, pagination domain.Pagination) ([]domain.Actor, *domain.Metadata, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Actor, error)
	CreateFunc  func(ctx context.Context, actor *domain.Actor) error
	UpdateFunc  func(ctx context.Context, actor *domain.Actor) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockActorRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.Actor, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockActorRepo) GetById(ctx context.Context, id int) (*domain.Actor, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockActorRepo) Create(ctx context.Context, actor *domain.Actor) error {
	return m.CreateFunc(ctx, actor)
}

func (m *MockActorRepo) Update(ctx context.Context, actor *domain.Actor) error {
	return m.UpdateFunc(ctx, actor)
}

func (m *MockActorRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
