package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

const maxOccurrenceDays = 62

func (a *Api) getDayScheduleHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	date, err := a.queryDate(r, "date")
	if err != nil {
		a.failedValidationResponse(w, r, map[string]string{"date": err.Error()})
		return
	}

	bucket := calendar.TimeBucket(r.URL.Query().Get("bucket"))
	if bucket != "" && !bucket.Valid() {
		a.failedValidationResponse(w, r, map[string]string{"bucket": "bucket must be one of morning, afternoon, evening"})
		return
	}

	classes, err := a.classesService.ClassesOnDate(r.Context(), user.ID, date, bucket)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("classes on date: %w", err))
		return
	}

	resp := &dayScheduleResp{
		DayDescriptor: calendar.DescribeDay(date),
		Classes:       mapToClassesResp(classes),
	}
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getWeekScheduleHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	date, err := a.queryDate(r, "date")
	if err != nil {
		a.failedValidationResponse(w, r, map[string]string{"date": err.Error()})
		return
	}

	week, err := a.classesService.WeekView(r.Context(), user.ID, date)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("week view: %w", err))
		return
	}

	resp, _ := mapSlice(week, mapToDayScheduleResp)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getNextClassHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	next, err := a.classesService.NextClass(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("next class: %w", err))
		return
	}

	resp, _ := mapToOccurrenceResp(next)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// getOccurrencesHandler lists meetings from the start of from through the
// end of to.
func (a *Api) getOccurrencesHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	query := r.URL.Query()
	errs := make(map[string]string)

	from, err := calendar.ParseDate(query.Get("from"), a.conf.Location)
	if err != nil {
		errs["from"] = err.Error()
	}
	to, err := calendar.ParseDate(query.Get("to"), a.conf.Location)
	if err != nil {
		errs["to"] = err.Error()
	}
	if len(errs) == 0 {
		switch days := calendar.AddDays(from, maxOccurrenceDays); {
		case to.Before(from):
			errs["to"] = "to must not be before from"
		case to.After(days):
			errs["to"] = fmt.Sprintf("range must not exceed %d days", maxOccurrenceDays)
		}
	}
	if len(errs) != 0 {
		a.failedValidationResponse(w, r, errs)
		return
	}

	occurrences, err := a.classesService.Occurrences(r.Context(), user.ID, startOfDay(from), startOfDay(calendar.AddDays(to, 1)))
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("occurrences: %w", err))
		return
	}

	resp, _ := mapSlice(occurrences, mapToOccurrenceResp)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
