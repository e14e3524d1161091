package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/go-chi/chi/v5"
)

const (
	defaultDueSoonDays = 3
	maxDueSoonDays     = 30
)

type taskReq struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	ClassID     string    `json:"class_id"`
	Type        string    `json:"type"`
	Priority    string    `json:"priority"`
}

func (a *Api) readTaskReq(w http.ResponseWriter, r *http.Request, userID string) (*model.TaskCreate, bool) {
	req := &taskReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return nil, false
	}

	return &model.TaskCreate{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ClassID:     req.ClassID,
		Type:        model.TaskType(req.Type),
		Priority:    model.TaskPriority(req.Priority),
	}, true
}

func (a *Api) writeTask(w http.ResponseWriter, r *http.Request, status int, task *model.Task) {
	resp, _ := mapToTaskResp(task)
	if err := a.writeJSON(w, status, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) writeTasks(w http.ResponseWriter, r *http.Request, tasks []*model.Task) {
	if err := a.writeJSON(w, http.StatusOK, mapToTasksResp(tasks), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	info, ok := a.readTaskReq(w, r, user.ID)
	if !ok {
		return
	}

	task, err := a.tasksService.CreateTask(r.Context(), info)
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("create task: %w", err))
		return
	}

	a.writeTask(w, r, http.StatusCreated, task)
}

func (a *Api) getTasksHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	tasks, err := a.tasksService.ListTasks(r.Context(), user.ID, r.URL.Query().Get("pending") == "true")
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("list tasks: %w", err))
		return
	}

	a.writeTasks(w, r, tasks)
}

func (a *Api) getTaskHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	task, err := a.tasksService.GetTask(r.Context(), user.ID, chi.URLParam(r, "taskID"))
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("get task: %w", err))
		return
	}

	a.writeTask(w, r, http.StatusOK, task)
}

func (a *Api) updateTaskHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	info, ok := a.readTaskReq(w, r, user.ID)
	if !ok {
		return
	}

	task, err := a.tasksService.UpdateTask(r.Context(), chi.URLParam(r, "taskID"), info)
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("update task: %w", err))
		return
	}

	a.writeTask(w, r, http.StatusOK, task)
}

func (a *Api) completeTaskHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	task, err := a.tasksService.CompleteTask(r.Context(), user.ID, chi.URLParam(r, "taskID"))
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("complete task: %w", err))
		return
	}

	a.writeTask(w, r, http.StatusOK, task)
}

func (a *Api) reopenTaskHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	task, err := a.tasksService.ReopenTask(r.Context(), user.ID, chi.URLParam(r, "taskID"))
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("reopen task: %w", err))
		return
	}

	a.writeTask(w, r, http.StatusOK, task)
}

func (a *Api) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	if err := a.tasksService.DeleteTask(r.Context(), user.ID, chi.URLParam(r, "taskID")); err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("delete task: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) getOverdueTasksHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	tasks, err := a.tasksService.ListOverdue(r.Context(), user.ID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("list overdue: %w", err))
		return
	}

	a.writeTasks(w, r, tasks)
}

func (a *Api) getDueSoonTasksHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	days, err := queryInt(r, "days", defaultDueSoonDays)
	if err != nil || days < 1 || days > maxDueSoonDays {
		a.failedValidationResponse(w, r, map[string]string{"days": fmt.Sprintf("days must be a number between 1 and %d", maxDueSoonDays)})
		return
	}

	tasks, err := a.tasksService.ListDueSoon(r.Context(), user.ID, days)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("list due soon: %w", err))
		return
	}

	a.writeTasks(w, r, tasks)
}

func (a *Api) getTaskStatsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	stats, err := a.tasksService.GetStats(r.Context(), user.ID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("task stats: %w", err))
		return
	}

	resp := &struct {
		Total      int `json:"total"`
		Completed  int `json:"completed"`
		Overdue    int `json:"overdue"`
		Percentage int `json:"completion_percentage"`
	}{
		Total:      stats.Total,
		Completed:  stats.Completed,
		Overdue:    stats.Overdue,
		Percentage: stats.Percentage,
	}
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
