package app

import (
	"context"
	"net/http"

	"github.com/metinatakli/movie-catalog-system/internal/domain"
)

const SessionKeyUserId = "userId"

type contextKey string

const userIdContextKey = contextKey("userId")

// authenticate resolves the session to a user id and stores it in the
// request context. Requests without a session carry AnonymousUserID.
func (app *Application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId)
		if userId == 0 {
			userId = domain.AnonymousUserID
		}

		ctx := context.WithValue(r.Context(), userIdContextKey, userId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contextUserId(r.Context()) == domain.AnonymousUserID {
			app.unauthorizedResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func contextUserId(ctx context.Context) int {
	userId, ok := ctx.Value(userIdContextKey).(int)
	if !ok {
		return domain.AnonymousUserID
	}

	return userId
}

func contextWithUserId(ctx context.Context, userId int) context.Context {
	return context.WithValue(ctx, userIdContextKey, userId)
}
