// Package api holds the wire types of the movie catalog HTTP API. The
// service has no OpenAPI document, so these are maintained by hand.
package api

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type CreatedResponse struct {
	Id int `json:"id"`
}

// Genres

type GenreResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// GenreListResponse serves both the paginated listing and the unpaginated
// selection-widget list; Metadata is present only in the former.
type GenreListResponse struct {
	Genres   []GenreResponse `json:"genres"`
	Metadata *Metadata       `json:"metadata,omitempty"`
}

type GenreUpsertRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// Actors

type ActorResponse struct {
	Id          int        `json:"id"`
	Name        string     `json:"name"`
	DateOfBirth types.Date `json:"dateOfBirth"`
	Biography   string     `json:"biography"`
	PictureUrl  string     `json:"pictureUrl"`
}

type ActorListResponse struct {
	Actors   []ActorResponse `json:"actors"`
	Metadata *Metadata       `json:"metadata"`
}

type ActorUpsertRequest struct {
	Name        string     `json:"name" validate:"required,max=100"`
	DateOfBirth types.Date `json:"dateOfBirth" validate:"required"`
	Biography   string     `json:"biography" validate:"max=5000"`
	// PictureData carries new picture content as base64; absent means keep
	// the stored reference untouched.
	PictureData *string `json:"pictureData,omitempty"`
}

// Movie theaters

type MovieTheaterResponse struct {
	Id        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type MovieTheaterUpsertRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// Movies

type CastMemberResponse struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Character  string `json:"character"`
	PictureUrl string `json:"pictureUrl"`
	Order      int    `json:"order"`
}

type MovieSummary struct {
	Id          int        `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	ReleaseDate types.Date `json:"releaseDate"`
	InTheaters  bool       `json:"inTheaters"`
	PosterUrl   string     `json:"posterUrl"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata *Metadata      `json:"metadata"`
}

type MovieResponse struct {
	Id            int                    `json:"id"`
	Title         string                 `json:"title"`
	Summary       string                 `json:"summary"`
	ReleaseDate   types.Date             `json:"releaseDate"`
	InTheaters    bool                   `json:"inTheaters"`
	PosterUrl     string                 `json:"posterUrl"`
	Genres        []GenreResponse        `json:"genres"`
	MovieTheaters []MovieTheaterResponse `json:"movieTheaters"`
	Cast          []CastMemberResponse   `json:"cast"`
	AverageVote   float64                `json:"averageVote"`
	UserVote      int                    `json:"userVote"`
}

type GetMoviesParams struct {
	Page         *int    `validate:"omitempty,min=1"`
	PageSize     *int    `validate:"omitempty,min=1,max=50"`
	Title        *string `validate:"omitempty,max=100"`
	InTheaters   *bool
	UpcomingOnly *bool
	GenreId      *int `validate:"omitempty,min=0"`
}

type CastMemberRequest struct {
	ActorId   int    `json:"actorId" validate:"required,min=1"`
	Character string `json:"character" validate:"required,max=100"`
}

type MovieUpsertRequest struct {
	Title           string              `json:"title" validate:"required,max=200"`
	Summary         string              `json:"summary" validate:"max=5000"`
	ReleaseDate     types.Date          `json:"releaseDate" validate:"required"`
	InTheaters      bool                `json:"inTheaters"`
	GenreIds        []int               `json:"genreIds" validate:"omitempty,dive,min=1"`
	MovieTheaterIds []int               `json:"movieTheaterIds" validate:"omitempty,dive,min=1"`
	Actors          []CastMemberRequest `json:"actors" validate:"omitempty,dive"`
	// PosterData carries new poster content as base64; absent means keep
	// the stored reference untouched.
	PosterData *string `json:"posterData,omitempty"`
}

type LandingPageResponse struct {
	UpcomingReleases []MovieSummary `json:"upcomingReleases"`
	InTheaters       []MovieSummary `json:"inTheaters"`
}

type MoviePostGetResponse struct {
	Genres        []GenreResponse        `json:"genres"`
	MovieTheaters []MovieTheaterResponse `json:"movieTheaters"`
}

type MoviePutGetResponse struct {
	Movie                    MovieResponse          `json:"movie"`
	SelectedGenres           []GenreResponse        `json:"selectedGenres"`
	NonSelectedGenres        []GenreResponse        `json:"nonSelectedGenres"`
	SelectedMovieTheaters    []MovieTheaterResponse `json:"selectedMovieTheaters"`
	NonSelectedMovieTheaters []MovieTheaterResponse `json:"nonSelectedMovieTheaters"`
	Actors                   []CastMemberResponse   `json:"actors"`
}

// Ratings

type RatingRequest struct {
	MovieId int `json:"movieId" validate:"required,min=1"`
	Rating  int `json:"rating" validate:"required,min=1,max=5"`
}

// Identity

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
