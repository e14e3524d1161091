package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/SergeyKozhin/student-planner-backend/internal/pkg/jwt"
)

type contextKey string

const (
	contextKeyID   = contextKey("id")
	contextKeyUser = contextKey("user")
)

var (
	errCantRetrieveID   = errors.New("can't retrieve id")
	errCantRetrieveUser = errors.New("can't retrieve user from context")
)

func (a *Api) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			a.unauthorizedResponse(w, r, errors.New("no token provided"))
			return
		}

		token = strings.TrimPrefix(token, "Bearer ")

		id, err := a.jwts.GetIdFromToken(token)
		if err != nil {
			invalidTokenErr := &jwt.InvalidTokenError{}
			switch {
			case errors.As(err, &invalidTokenErr):
				a.unauthorizedResponse(w, r, invalidTokenErr)
			default:
				a.serverErrorResponse(w, r, err)
			}
			return
		}

		idContext := context.WithValue(r.Context(), contextKeyID, id)
		next.ServeHTTP(w, r.WithContext(idContext))
	})
}

// userCtx loads the caller, registering users the auth provider knows but
// this service has not seen yet.
func (a *Api) userCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := r.Context().Value(contextKeyID).(string)
		if !ok {
			a.serverErrorResponse(w, r, errCantRetrieveID)
			return
		}

		user, err := a.users.GetUserByID(r.Context(), a.db, id)
		if errors.Is(err, model.ErrNoRecord) {
			if err := a.users.EnsureUser(r.Context(), a.db, &model.User{ID: id, Locale: a.conf.DefaultLocale}); err != nil {
				a.serverErrorResponse(w, r, fmt.Errorf("ensure user: %w", err))
				return
			}
			user, err = a.users.GetUserByID(r.Context(), a.db, id)
		}
		if err != nil {
			a.serverErrorResponse(w, r, fmt.Errorf("get user: %w", err))
			return
		}

		userCtx := context.WithValue(r.Context(), contextKeyUser, user)
		next.ServeHTTP(w, r.WithContext(userCtx))
	})
}

func userFromContext(r *http.Request) (*model.User, bool) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	return user, ok
}
