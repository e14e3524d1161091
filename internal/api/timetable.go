package api

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/SergeyKozhin/student-planner-backend/internal/pkg/validator"
	"github.com/SergeyKozhin/student-planner-backend/internal/timetable"
)

const maxTimetableText = 20_000

type candidatesResp struct {
	Candidates []timetable.Candidate `json:"candidates"`
}

func (a *Api) parseTimetableHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Text string `json:"text"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(req.Text != "", "text", "text must be provided")
	v.Check(utf8.RuneCountInString(req.Text) <= maxTimetableText, "text", fmt.Sprintf("text must not be more than %d characters long", maxTimetableText))

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	candidates, err := timetable.ParseText(req.Text)
	if err != nil {
		if errors.Is(err, model.ErrNoCandidates) {
			a.failedValidationResponse(w, r, map[string]string{"text": err.Error()})
			return
		}
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, &candidatesResp{Candidates: candidates}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) parseICSHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.conf.MaxUploadSize)
	if err := r.ParseMultipartForm(a.conf.MaxUploadSize); err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("file must be a multipart upload of at most %d bytes", a.conf.MaxUploadSize))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		a.failedValidationResponse(w, r, map[string]string{"file": "file must be provided"})
		return
	}
	defer file.Close()

	candidates, err := timetable.ParseICS(file, a.conf.Location)
	if err != nil {
		a.failedValidationResponse(w, r, map[string]string{"file": err.Error()})
		return
	}
	if len(candidates) == 0 {
		a.failedValidationResponse(w, r, map[string]string{"file": model.ErrNoCandidates.Error()})
		return
	}

	if err := a.writeJSON(w, http.StatusOK, &candidatesResp{Candidates: candidates}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) importTimetableHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	req := &struct {
		Candidates []timetable.Candidate `json:"candidates"`
		Reminders  []leadTime            `json:"reminders"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(req.Candidates) != 0, "candidates", "at least one candidate must be provided")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	res, err := a.classesService.ImportCandidates(r.Context(), user.ID, req.Candidates, leadMinutes(req.Reminders))
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("import candidates: %w", err))
		return
	}

	type skippedResp struct {
		Index   int    `json:"index"`
		Subject string `json:"subject"`
		Reason  string `json:"reason"`
	}

	resp := &struct {
		Created []*classResp   `json:"created"`
		Skipped []*skippedResp `json:"skipped"`
	}{
		Created: mapToClassesResp(res.Created),
		Skipped: make([]*skippedResp, len(res.Skipped)),
	}
	for i, s := range res.Skipped {
		resp.Skipped[i] = &skippedResp{Index: s.Index, Subject: s.Subject, Reason: s.Reason}
	}

	status := http.StatusCreated
	if len(res.Created) == 0 {
		status = http.StatusOK
	}

	if err := a.writeJSON(w, status, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
