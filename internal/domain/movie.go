package domain

import (
	"context"
	"sort"
	"time"
)

type Movie struct {
	ID          int
	Title       string
	Summary     string
	ReleaseDate time.Time
	InTheaters  bool
	Poster      string
	Genres      []Genre
	Theaters    []MovieTheater
	Cast        []CastMember
}

// CastMember is the view of a movie_actors row projected through its actor.
type CastMember struct {
	ActorID   int
	Name      string
	Picture   string
	Character string
	Order     int
}

// MovieGenre, MovieActor and MovieTheaterMovie are the linking rows of the
// movie aggregate. They have no lifecycle of their own: the repository
// creates and deletes them only as part of a movie create/update/delete.
type MovieGenre struct {
	MovieID int
	GenreID int
}

type MovieActor struct {
	MovieID   int
	ActorID   int
	Character string
	Order     int
}

type MovieTheaterMovie struct {
	MovieTheaterID int
	MovieID        int
}

type MovieLinks struct {
	Genres   []MovieGenre
	Theaters []MovieTheaterMovie
	Cast     []MovieActor
}

// AnnotateCastOrder assigns each cast row its position in the submitted
// list. This is the only source of cast ordering; any order carried by the
// input is discarded.
func AnnotateCastOrder(cast []MovieActor) {
	for i := range cast {
		cast[i].Order = i
	}
}

// SortCastByOrder orders an assembled cast list ascending by its stored
// order column. Retrieval order from the database is not trusted.
func SortCastByOrder(cast []CastMember) {
	sort.SliceStable(cast, func(i, j int) bool {
		return cast[i].Order < cast[j].Order
	})
}

type MovieFilters struct {
	Title        string
	InTheaters   bool
	UpcomingOnly bool
	GenreID      int
	Pagination
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	GetUpcoming(ctx context.Context, limit int) ([]*Movie, error)
	GetInTheaters(ctx context.Context, limit int) ([]*Movie, error)
	Create(ctx context.Context, movie *Movie, links MovieLinks) error
	Update(ctx context.Context, movie *Movie, links MovieLinks) error
	Delete(ctx context.Context, id int) error
}
