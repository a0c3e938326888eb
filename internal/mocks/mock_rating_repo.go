package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog-system/internal/domain"
)

type MockRatingRepo struct {
	domain.RatingRepository
	UpsertFunc          func(ctx context.Context, rating domain.Rating) error
	GetMovieSummaryFunc func(ctx context.Context, movieID, userID int) (domain.RatingSummary, error)
}

func (m *MockRatingRepo) Upsert(ctx context.Context, rating domain.Rating) error {
	return m.UpsertFunc(ctx, rating)
}

func (m *MockRatingRepo) GetMovieSummary(ctx context.Context, movieID, userID int) (domain.RatingSummary, error) {
	return m.GetMovieSummaryFunc(ctx, movieID, userID)
}
