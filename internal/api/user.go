package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/SergeyKozhin/student-planner-backend/internal/pkg/fcm"
	"github.com/SergeyKozhin/student-planner-backend/internal/pkg/validator"
)

var supportedLocales = []string{"ar", "en"}

func (a *Api) getUserHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	resp, _ := mapToUserResp(user)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	req := &struct {
		PushToken *string `json:"push_token"`
		Notify    *bool   `json:"notify"`
		Locale    *string `json:"locale"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if req.Locale != nil {
		*req.Locale = strings.ToLower(strings.TrimSpace(*req.Locale))
		v.Check(validator.In(*req.Locale, supportedLocales...), "locale", "locale must be one of ar, en")
	}
	if req.PushToken != nil {
		*req.PushToken = strings.TrimSpace(*req.PushToken)
	}

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := a.users.UpdateUser(r.Context(), a.db, user.ID, &model.UserUpdate{
		PushToken: req.PushToken,
		Notify:    req.Notify,
		Locale:    req.Locale,
	}); err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("update user: %w", err))
		return
	}

	updated, err := a.users.GetUserByID(r.Context(), a.db, user.ID)
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("get user: %w", err))
		return
	}

	resp, _ := mapToUserResp(updated)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) sendTestNotificationHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	if user.PushToken == "" {
		a.failedValidationResponse(w, r, map[string]string{"push_token": "push token must be registered first"})
		return
	}

	if err := a.fcm.SendMessage(r.Context(), &fcm.Message{
		Token: user.PushToken,
		Title: "Student Planner",
		Body:  "Notifications are working",
		Data: map[string]string{
			"kind": "test",
		},
	}); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
