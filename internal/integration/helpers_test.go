package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return req, nil
}

func jsonBody(t testing.TB, v any) io.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(data)
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func execSQL(t testing.TB, db *pgxpool.Pool, query string, args ...any) {
	_, err := db.Exec(context.Background(), query, args...)
	require.NoError(t, err)
}

func truncateCatalog(t testing.TB, db *pgxpool.Pool) {
	execSQL(t, db, `TRUNCATE ratings, movie_theater_movies, movie_actors, movie_genres,
		movies, genres, actors, movie_theaters RESTART IDENTITY CASCADE`)
}

func insertGenre(t testing.TB, db *pgxpool.Pool, name string) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO genres (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertActor(t testing.TB, db *pgxpool.Pool, name string, dateOfBirth time.Time) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO actors (name, date_of_birth) VALUES ($1, $2) RETURNING id`,
		name, dateOfBirth).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTheater(t testing.TB, db *pgxpool.Pool, name string, latitude, longitude float64) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO movie_theaters (name, location)
		 VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)) RETURNING id`,
		name, longitude, latitude).Scan(&id)
	require.NoError(t, err)

	return id
}

type testMovie struct {
	Title       string
	Summary     string
	ReleaseDate time.Time
	InTheaters  bool
	Poster      string
}

func insertMovie(t testing.TB, db *pgxpool.Pool, m testMovie) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO movies (title, summary, release_date, in_theaters, poster)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		m.Title, m.Summary, m.ReleaseDate, m.InTheaters, m.Poster).Scan(&id)
	require.NoError(t, err)

	return id
}

func linkMovieGenre(t testing.TB, db *pgxpool.Pool, movieId, genreId int) {
	execSQL(t, db, `INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)`, movieId, genreId)
}

func linkMovieActor(t testing.TB, db *pgxpool.Pool, movieId, actorId int, character string, ord int) {
	execSQL(t, db, `INSERT INTO movie_actors (movie_id, actor_id, character_name, ord)
		VALUES ($1, $2, $3, $4)`, movieId, actorId, character, ord)
}

func linkMovieTheater(t testing.TB, db *pgxpool.Pool, theaterId, movieId int) {
	execSQL(t, db, `INSERT INTO movie_theater_movies (movie_theater_id, movie_id) VALUES ($1, $2)`, theaterId, movieId)
}

// registerAndLogin creates a fresh user through the HTTP surface and returns
// the authenticated session cookie.
func registerAndLogin(t testing.TB, server *httptest.Server, email, password string) *http.Cookie {
	credentials := map[string]string{"email": email, "password": password}

	res, err := http.Post(server.URL+"/auth/register", "application/json", jsonBody(t, credentials))
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, err = http.Post(server.URL+"/auth/login", "application/json", jsonBody(t, credentials))
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	for _, cookie := range res.Cookies() {
		if cookie.Name == "session_id" {
			return cookie
		}
	}

	t.Fatal("no session cookie returned by login")
	return nil
}
