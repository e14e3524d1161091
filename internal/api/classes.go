package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/go-chi/chi/v5"
)

type classReq struct {
	Name               string     `json:"name"`
	Time               string     `json:"time"`
	Days               []string   `json:"days"`
	Location           string     `json:"location"`
	RepetitionInterval int        `json:"repetition_interval"`
	Reminders          []leadTime `json:"reminders"`
	Color              string     `json:"color"`
	StartDate          string     `json:"start_date"`
}

func (a *Api) readClassReq(w http.ResponseWriter, r *http.Request, userID string) (*model.ClassCreate, bool) {
	req := &classReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return nil, false
	}

	var start time.Time
	if req.StartDate != "" {
		var err error
		start, err = calendar.ParseDate(req.StartDate, a.conf.Location)
		if err != nil {
			a.failedValidationResponse(w, r, map[string]string{"start_date": err.Error()})
			return nil, false
		}
	}

	return &model.ClassCreate{
		UserID:             userID,
		Name:               req.Name,
		Time:               req.Time,
		Days:               req.Days,
		Location:           req.Location,
		RepetitionInterval: req.RepetitionInterval,
		Reminders:          leadMinutes(req.Reminders),
		Color:              req.Color,
		StartDate:          start,
	}, true
}

func (a *Api) createClassHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	info, ok := a.readClassReq(w, r, user.ID)
	if !ok {
		return
	}

	class, err := a.classesService.CreateClass(r.Context(), info)
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("create class: %w", err))
		return
	}

	resp, _ := mapToClassResp(class)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getClassesHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	classes, err := a.classesService.ListClasses(r.Context(), user.ID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("list classes: %w", err))
		return
	}

	if day := r.URL.Query().Get("day"); day != "" {
		classes = calendar.FilterByDay(classes, day)
	}
	if subject := r.URL.Query().Get("subject"); subject != "" {
		classes = calendar.FilterBySubject(classes, subject)
	}
	if bucket := calendar.TimeBucket(r.URL.Query().Get("bucket")); bucket != "" {
		if !bucket.Valid() {
			a.failedValidationResponse(w, r, map[string]string{"bucket": "bucket must be one of morning, afternoon, evening"})
			return
		}
		classes = calendar.FilterByTimeOfDay(classes, bucket)
	}

	if err := a.writeJSON(w, http.StatusOK, mapToClassesResp(classes), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getClassHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	class, err := a.classesService.GetClass(r.Context(), user.ID, chi.URLParam(r, "classID"))
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("get class: %w", err))
		return
	}

	resp, _ := mapToClassResp(class)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateClassHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	info, ok := a.readClassReq(w, r, user.ID)
	if !ok {
		return
	}

	class, err := a.classesService.UpdateClass(r.Context(), chi.URLParam(r, "classID"), info)
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("update class: %w", err))
		return
	}

	resp, _ := mapToClassResp(class)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteClassHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	if err := a.classesService.DeleteClass(r.Context(), user.ID, chi.URLParam(r, "classID")); err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("delete class: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
