package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/movie-catalog-system/api"
	"github.com/metinatakli/movie-catalog-system/internal/domain"
)

// RateMovie stores the caller's rating for a movie. A repeat rating by the
// same user replaces the previous one.
func (app *Application) RateMovie(w http.ResponseWriter, r *http.Request) {
	var req api.RatingRequest

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

	rating := domain.Rating{
		MovieID: req.MovieId,
		UserID:  contextUserId(r.Context()),
		Rate:    req.Rating,
	}

	err = app.ratingRepo.Upsert(r.Context(), rating)
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
