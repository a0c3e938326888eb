package app

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/metinatakli/movie-catalog-system/api"
	"github.com/metinatakli/movie-catalog-system/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50

	landingPageSize  = 6
	postersContainer = "movies"
	posterExtension  = ".jpg"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	params, err := parseGetMoviesParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toMovieFilters(params)

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieSummaries(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	summary, err := app.ratingRepo.GetMovieSummary(r.Context(), id, contextUserId(r.Context()))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie, summary), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req api.MovieUpsertRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, links := toMovieAggregate(&req, 0)

	if req.PosterData != nil {
		poster, err := app.savePoster(r.Context(), *req.PosterData)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		movie.Poster = poster
	}

	err = app.movieRepo.Create(r.Context(), movie, links)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, errors.New("one or more referenced genres, theaters or actors do not exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, api.CreatedResponse{Id: movie.ID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	existing, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var req api.MovieUpsertRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, links := toMovieAggregate(&req, id)
	movie.Poster = existing.Poster

	if req.PosterData != nil {
		content, err := base64.StdEncoding.DecodeString(*req.PosterData)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("posterData must be valid base64"))
			return
		}

		poster, err := app.fileStorage.Replace(r.Context(), postersContainer, content, posterExtension, existing.Poster)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
		movie.Poster = poster
	}

	err = app.movieRepo.Update(r.Context(), movie, links)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// The row is gone; an orphaned poster file is not worth failing the
	// request over.
	if movie.Poster != "" {
		err = app.fileStorage.Delete(r.Context(), movie.Poster, postersContainer)
		if err != nil {
			app.logger.Warn("failed to delete poster file", "movieId", id, "poster", movie.Poster, "error", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) GetLandingPage(w http.ResponseWriter, r *http.Request) {
	upcoming, err := app.movieRepo.GetUpcoming(r.Context(), landingPageSize)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	inTheaters, err := app.movieRepo.GetInTheaters(r.Context(), landingPageSize)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.LandingPageResponse{
		UpcomingReleases: toMovieSummaries(upcoming),
		InTheaters:       toMovieSummaries(inTheaters),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetMovieForm returns the reference data a client needs to render a movie
// creation form.
func (app *Application) GetMovieForm(w http.ResponseWriter, r *http.Request) {
	genres, err := app.genreRepo.GetAllSorted(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	theaters, err := app.theaterRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MoviePostGetResponse{
		Genres:        toGenreResponses(genres),
		MovieTheaters: toMovieTheaterResponses(theaters),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetMovieEditForm returns a movie together with the reference data split
// into selected and non-selected halves, so a client can render an edit form
// without further lookups.
func (app *Application) GetMovieEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	summary, err := app.ratingRepo.GetMovieSummary(r.Context(), id, contextUserId(r.Context()))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	genres, err := app.genreRepo.GetAllSorted(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	theaters, err := app.theaterRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	movieResp := toMovieResponse(movie, summary)

	selectedGenreIds := make(map[int]bool, len(movie.Genres))
	for _, genre := range movie.Genres {
		selectedGenreIds[genre.ID] = true
	}

	selectedGenres := make([]api.GenreResponse, 0)
	nonSelectedGenres := make([]api.GenreResponse, 0)
	for _, genre := range genres {
		if selectedGenreIds[genre.ID] {
			selectedGenres = append(selectedGenres, toGenreResponse(genre))
		} else {
			nonSelectedGenres = append(nonSelectedGenres, toGenreResponse(genre))
		}
	}

	selectedTheaterIds := make(map[int]bool, len(movie.Theaters))
	for _, theater := range movie.Theaters {
		selectedTheaterIds[theater.ID] = true
	}

	selectedTheaters := make([]api.MovieTheaterResponse, 0)
	nonSelectedTheaters := make([]api.MovieTheaterResponse, 0)
	for _, theater := range theaters {
		if selectedTheaterIds[theater.ID] {
			selectedTheaters = append(selectedTheaters, toMovieTheaterResponse(&theater))
		} else {
			nonSelectedTheaters = append(nonSelectedTheaters, toMovieTheaterResponse(&theater))
		}
	}

	resp := api.MoviePutGetResponse{
		Movie:                    movieResp,
		SelectedGenres:           selectedGenres,
		NonSelectedGenres:        nonSelectedGenres,
		SelectedMovieTheaters:    selectedTheaters,
		NonSelectedMovieTheaters: nonSelectedTheaters,
		Actors:                   movieResp.Cast,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) savePoster(ctx context.Context, data string) (string, error) {
	content, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", errors.New("posterData must be valid base64")
	}

	return app.fileStorage.Save(ctx, postersContainer, content, posterExtension)
}

func parseGetMoviesParams(r *http.Request) (api.GetMoviesParams, error) {
	var params api.GetMoviesParams
	var err error

	params.Page, err = readQueryInt(r, "page")
	if err != nil {
		return params, err
	}

	params.PageSize, err = readQueryInt(r, "pageSize")
	if err != nil {
		return params, err
	}

	params.Title = readQueryString(r, "title")

	params.InTheaters, err = readQueryBool(r, "inTheaters")
	if err != nil {
		return params, err
	}

	params.UpcomingOnly, err = readQueryBool(r, "upcomingOnly")
	if err != nil {
		return params, err
	}

	params.GenreId, err = readQueryInt(r, "genreId")
	if err != nil {
		return params, err
	}

	return params, nil
}

func toMovieFilters(params api.GetMoviesParams) domain.MovieFilters {
	filters := domain.MovieFilters{
		Pagination: domain.Pagination{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
		},
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Title != nil {
		filters.Title = *params.Title
	}
	if params.InTheaters != nil {
		filters.InTheaters = *params.InTheaters
	}
	if params.UpcomingOnly != nil {
		filters.UpcomingOnly = *params.UpcomingOnly
	}
	if params.GenreId != nil {
		filters.GenreID = *params.GenreId
	}

	return filters
}

// toMovieAggregate maps an upsert request onto the aggregate root and its
// linking rows. Cast order comes from the position of each entry in the
// request.
func toMovieAggregate(req *api.MovieUpsertRequest, movieId int) (*domain.Movie, domain.MovieLinks) {
	movie := &domain.Movie{
		ID:          movieId,
		Title:       req.Title,
		Summary:     req.Summary,
		ReleaseDate: req.ReleaseDate.Time,
		InTheaters:  req.InTheaters,
	}

	links := domain.MovieLinks{
		Genres:   make([]domain.MovieGenre, 0, len(req.GenreIds)),
		Theaters: make([]domain.MovieTheaterMovie, 0, len(req.MovieTheaterIds)),
		Cast:     make([]domain.MovieActor, 0, len(req.Actors)),
	}

	for _, genreId := range req.GenreIds {
		links.Genres = append(links.Genres, domain.MovieGenre{MovieID: movieId, GenreID: genreId})
	}

	for _, theaterId := range req.MovieTheaterIds {
		links.Theaters = append(links.Theaters, domain.MovieTheaterMovie{MovieTheaterID: theaterId, MovieID: movieId})
	}

	for _, actor := range req.Actors {
		links.Cast = append(links.Cast, domain.MovieActor{
			MovieID:   movieId,
			ActorID:   actor.ActorId,
			Character: actor.Character,
		})
	}

	domain.AnnotateCastOrder(links.Cast)

	return movie, links
}

func toMovieSummaries(movies []*domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = toMovieSummary(movie)
	}

	return summaries
}

func toMovieSummary(movie *domain.Movie) api.MovieSummary {
	if movie == nil {
		return api.MovieSummary{}
	}

	return api.MovieSummary{
		Id:          movie.ID,
		Title:       movie.Title,
		Summary:     movie.Summary,
		ReleaseDate: types.Date{Time: movie.ReleaseDate},
		InTheaters:  movie.InTheaters,
		PosterUrl:   movie.Poster,
	}
}

func toMovieResponse(movie *domain.Movie, summary domain.RatingSummary) api.MovieResponse {
	domain.SortCastByOrder(movie.Cast)

	cast := make([]api.CastMemberResponse, len(movie.Cast))
	for i, member := range movie.Cast {
		cast[i] = api.CastMemberResponse{
			Id:         member.ActorID,
			Name:       member.Name,
			Character:  member.Character,
			PictureUrl: member.Picture,
			Order:      member.Order,
		}
	}

	theaters := make([]api.MovieTheaterResponse, len(movie.Theaters))
	for i := range movie.Theaters {
		theaters[i] = toMovieTheaterResponse(&movie.Theaters[i])
	}

	return api.MovieResponse{
		Id:            movie.ID,
		Title:         movie.Title,
		Summary:       movie.Summary,
		ReleaseDate:   types.Date{Time: movie.ReleaseDate},
		InTheaters:    movie.InTheaters,
		PosterUrl:     movie.Poster,
		Genres:        toGenreResponses(movie.Genres),
		MovieTheaters: theaters,
		Cast:          cast,
		AverageVote:   summary.AverageVote,
		UserVote:      summary.UserVote,
	}
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
