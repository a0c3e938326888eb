package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/movie-catalog-system/api"
	"github.com/metinatakli/movie-catalog-system/internal/domain"
	"github.com/metinatakli/movie-catalog-system/internal/mocks"
	"github.com/metinatakli/movie-catalog-system/internal/validator"
)

func TestGetMovieTheaters(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.theaterRepo = &mocks.MockMovieTheaterRepo{
			GetAllFunc: func(ctx context.Context) ([]domain.MovieTheater, error) {
				return []domain.MovieTheater{
					{ID: 1, Name: "Center", Location: domain.Point{Latitude: 41.03, Longitude: 29.01}},
					{ID: 2, Name: "Mall", Location: domain.Point{Latitude: 40.99, Longitude: 28.87}},
				}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/movietheaters", nil)

	app.GetMovieTheaters(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("GetMovieTheaters() status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp []api.MovieTheaterResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	want := []api.MovieTheaterResponse{
		{Id: 1, Name: "Center", Latitude: 41.03, Longitude: 29.01},
		{Id: 2, Name: "Mall", Latitude: 40.99, Longitude: 28.87},
	}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("GetMovieTheaters() response mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateMovieTheater(t *testing.T) {
	tests := []struct {
		name           string
		body           api.MovieTheaterUpsertRequest
		wantStatus     int
		wantErrMessage string
		wantLocation   *domain.Point
	}{
		{
			name:         "successful creation",
			body:         api.MovieTheaterUpsertRequest{Name: "Center", Latitude: 41.03, Longitude: 29.01},
			wantStatus:   http.StatusCreated,
			wantLocation: &domain.Point{Latitude: 41.03, Longitude: 29.01},
		},
		{
			name:           "latitude out of range",
			body:           api.MovieTheaterUpsertRequest{Name: "Center", Latitude: 91, Longitude: 29.01},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be at most 90",
		},
		{
			name:           "longitude out of range",
			body:           api.MovieTheaterUpsertRequest{Name: "Center", Latitude: 41.03, Longitude: -181},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be at least -180",
		},
		{
			name:           "missing name",
			body:           api.MovieTheaterUpsertRequest{Latitude: 41.03, Longitude: 29.01},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLocation domain.Point

			app := newTestApplication(func(a *Application) {
				a.theaterRepo = &mocks.MockMovieTheaterRepo{
					CreateFunc: func(ctx context.Context, theater *domain.MovieTheater) error {
						theater.ID = 9
						gotLocation = theater.Location
						return nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/movietheaters", tt.body)

			app.CreateMovieTheater(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateMovieTheater() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantLocation != nil && gotLocation != *tt.wantLocation {
				t.Errorf("CreateMovieTheater() location = %+v, want %+v", gotLocation, *tt.wantLocation)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
