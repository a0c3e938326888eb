package app

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/metinatakli/movie-catalog-system/api"
	"github.com/metinatakli/movie-catalog-system/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

const (
	picturesContainer = "actors"
	pictureExtension  = ".jpg"
)

func (app *Application) GetActors(w http.ResponseWriter, r *http.Request) {
	pagination, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	actors, metadata, err := app.actorRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	responses := make([]api.ActorResponse, len(actors))
	for i, actor := range actors {
		responses[i] = toActorResponse(&actor)
	}

	resp := api.ActorListResponse{
		Actors:   responses,
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetActor(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	actor, err := app.actorRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toActorResponse(actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req api.ActorUpsertRequest

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

	actor := &domain.Actor{
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth.Time,
		Biography:   req.Biography,
	}

	if req.PictureData != nil {
		content, err := base64.StdEncoding.DecodeString(*req.PictureData)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("pictureData must be valid base64"))
			return
		}

		picture, err := app.fileStorage.Save(r.Context(), picturesContainer, content, pictureExtension)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
		actor.Picture = picture
	}

	err = app.actorRepo.Create(r.Context(), actor)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, api.CreatedResponse{Id: actor.ID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateActor(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	existing, err := app.actorRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var req api.ActorUpsertRequest

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

	actor := &domain.Actor{
		ID:          id,
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth.Time,
		Biography:   req.Biography,
		Picture:     existing.Picture,
	}

	if req.PictureData != nil {
		content, err := base64.StdEncoding.DecodeString(*req.PictureData)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("pictureData must be valid base64"))
			return
		}

		picture, err := app.fileStorage.Replace(r.Context(), picturesContainer, content, pictureExtension, existing.Picture)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
		actor.Picture = picture
	}

	err = app.actorRepo.Update(r.Context(), actor)
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

func (app *Application) DeleteActor(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	actor, err := app.actorRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.actorRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if actor.Picture != "" {
		err = app.fileStorage.Delete(r.Context(), actor.Picture, picturesContainer)
		if err != nil {
			app.logger.Warn("failed to delete picture file", "actorId", id, "picture", actor.Picture, "error", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func toActorResponse(actor *domain.Actor) api.ActorResponse {
	return api.ActorResponse{
		Id:          actor.ID,
		Name:        actor.Name,
		DateOfBirth: types.Date{Time: actor.DateOfBirth},
		Biography:   actor.Biography,
		PictureUrl:  actor.Picture,
	}
}
