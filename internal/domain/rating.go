package domain

import "context"

type Rating struct {
	MovieID int
	UserID  int
	Rate    int
}

// RatingSummary carries the aggregates computed for one movie. UserVote is
// zero when the caller is anonymous or has no prior rating; AverageVote is
// zero when the movie has no ratings at all.
type RatingSummary struct {
	AverageVote float64
	UserVote    int
}

type RatingRepository interface {
	// Upsert stores a rating keyed by (movie, user), overwriting the rate
	// of an existing row instead of creating a second one.
	Upsert(ctx context.Context, rating Rating) error

	// GetMovieSummary computes the aggregates for a movie. A userID of
	// AnonymousUserID yields a zero UserVote.
	GetMovieSummary(ctx context.Context, movieID, userID int) (RatingSummary, error)
}

const AnonymousUserID = 0
