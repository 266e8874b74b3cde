package services

import (
	"context"

	"taskmaster-go/app/models"
	"taskmaster-go/app/storage"
)

// TaskService handles task-related operations.
type TaskService struct {
	source storage.TaskSource
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(source storage.TaskSource) *TaskService {
	return &TaskService{source: source}
}

// Summary loads the collection fresh from the source and aggregates it.
// A load failure is returned as is; no partial result is produced.
func (s *TaskService) Summary(ctx context.Context) (models.AggregateResult, error) {
	tasks, err := s.source.LoadTaskCollection(ctx)
	if err != nil {
		return models.AggregateResult{}, err
	}
	return Aggregate(tasks), nil
}
