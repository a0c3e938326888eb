package domain

import "context"

// Point is an opaque coordinate pair. The core never interprets it; it is
// decomposed into separate latitude/longitude fields only at the DTO
// boundary.
type Point struct {
	Latitude  float64
	Longitude float64
}

type MovieTheater struct {
	ID       int
	Name     string
	Location Point
}

type MovieTheaterRepository interface {
	GetAll(ctx context.Context) ([]MovieTheater, error)
	GetById(ctx context.Context, id int) (*MovieTheater, error)
	Create(ctx context.Context, theater *MovieTheater) error
	Update(ctx context.Context, theater *MovieTheater) error
	Delete(ctx context.Context, id int) error
}
