package controllers

import (
	"context"
	"net/http"

	"taskmaster-go/app/models"
)

// TaskSummarizer produces the aggregated task list.
type TaskSummarizer interface {
	Summary(ctx context.Context) (models.AggregateResult, error)
}

// TaskController handles HTTP requests for tasks.
type TaskController struct {
	Service TaskSummarizer
	Errors  Errors
}

// NewTaskController creates a new TaskController.
func NewTaskController(service TaskSummarizer, errs Errors) *TaskController {
	return &TaskController{Service: service, Errors: errs}
}

// GetTasks handles GET /api/v1/tasks.
func (c *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	result, err := c.Service.Summary(r.Context())
	if err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
