package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/student-planner-backend/internal/pkg/icalexport"
)

func (a *Api) getCalendarFeedHandler(w http.ResponseWriter, r *http.Request) {
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

	var buf bytes.Buffer
	if err := icalexport.Write(&buf, classes, a.conf.Location, a.now(), a.conf.DefaultLead); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="classes.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
