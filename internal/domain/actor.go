package domain

import (
	"context"
	"time"
)

type Actor struct {
	ID          int
	Name        string
	DateOfBirth time.Time
	Biography   string
	Picture     string
}

type ActorRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]Actor, *Metadata, error)
	GetById(ctx context.Context, id int) (*Actor, error)
	Create(ctx context.Context, actor *Actor) error
	Update(ctx context.Context, actor *Actor) error
	Delete(ctx context.Context, id int) error
}
