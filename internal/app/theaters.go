package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/movie-catalog-system/api"
	"github.com/metinatakli/movie-catalog-system/internal/domain"
)

func (app *Application) GetMovieTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := app.theaterRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieTheaterResponses(theaters), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieTheater(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	theater, err := app.theaterRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieTheaterResponse(theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovieTheater(w http.ResponseWriter, r *http.Request) {
	var req api.MovieTheaterUpsertRequest

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

	theater := &domain.MovieTheater{
		Name: req.Name,
		Location: domain.Point{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
	}

	err = app.theaterRepo.Create(r.Context(), theater)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, api.CreatedResponse{Id: theater.ID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovieTheater(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.MovieTheaterUpsertRequest

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

	theater := &domain.MovieTheater{
		ID:   id,
		Name: req.Name,
		Location: domain.Point{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
	}

	err = app.theaterRepo.Update(r.Context(), theater)
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

func (app *Application) DeleteMovieTheater(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.theaterRepo.Delete(r.Context(), id)
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

func toMovieTheaterResponses(theaters []domain.MovieTheater) []api.MovieTheaterResponse {
	responses := make([]api.MovieTheaterResponse, len(theaters))
	for i := range theaters {
		responses[i] = toMovieTheaterResponse(&theaters[i])
	}

	return responses
}

func toMovieTheaterResponse(theater *domain.MovieTheater) api.MovieTheaterResponse {
	return api.MovieTheaterResponse{
		Id:        theater.ID,
		Name:      theater.Name,
		Latitude:  theater.Location.Latitude,
		Longitude: theater.Location.Longitude,
	}
}
