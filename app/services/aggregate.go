package services

import (
	"math"

	"taskmaster-go/app/models"
)

// Progress returns the task's completion percentage in [0,100]. With
// subtasks it is the rounded share of done subtasks; nested subtasks are
// not considered. Without subtasks it is 100 for a done task and 0
// otherwise.
func Progress(task models.Task) int {
	if len(task.Subtasks) == 0 {
		if task.Status.Done() {
			return 100
		}
		return 0
	}
	done := 0
	for _, st := range task.Subtasks {
		if st.Status.Done() {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(task.Subtasks))))
}

// Aggregate enriches every task with its progress and computes the
// collection counters. Task order is preserved.
func Aggregate(tasks models.TaskCollection) models.AggregateResult {
	result := models.AggregateResult{
		Tasks:      make([]models.TaskProgress, 0, len(tasks)),
		TotalTasks: len(tasks),
	}
	for _, task := range tasks {
		result.Tasks = append(result.Tasks, models.TaskProgress{
			Task:     task,
			Progress: Progress(task),
		})
		if task.Status.Done() {
			result.CompletedTasks++
		}
		result.TotalSubtasks += len(task.Subtasks)
	}
	return result
}
