package integration_test

import "time"

const (
	// User related constants
	TestUserEmail    = "test@example.com"
	TestUserPassword = "Test123!@#"

	// Movie related constants
	TestMovieTitle   = "Test Movie"
	TestMovieSummary = "A test movie summary."
	TestMoviePoster  = "https://example.com/poster.jpg"
)

var (
	today       = time.Now().UTC().Truncate(24 * time.Hour)
	pastDate    = today.AddDate(0, 0, -30)
	futureDate  = today.AddDate(0, 1, 0)
	defaultDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)
