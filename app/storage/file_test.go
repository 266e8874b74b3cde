package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster-go/app/apperrors"
	"taskmaster-go/app/models"
)

func TestFileSourceLoad(t *testing.T) {
	src := NewFileSource(filepath.Join("testdata", "tasks.json"))

	tasks, err := src.LoadTaskCollection(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	first := tasks[0]
	assert.Equal(t, models.ID("1"), first.ID)
	assert.Equal(t, "First", first.Title)
	assert.Equal(t, models.StatusDone, first.Status)
	assert.Equal(t, models.PriorityHigh, first.Priority)
	require.Len(t, first.Subtasks, 2)
	assert.Equal(t, models.ID("1.2"), first.Subtasks[1].ID)
	assert.Equal(t, models.Status("todo"), first.Subtasks[1].Status)

	second := tasks[1]
	assert.Equal(t, models.ID("2"), second.ID, "numeric ids decode to strings")
	assert.Nil(t, second.Subtasks)
	assert.Equal(t, []models.ID{"1"}, second.Dependencies)
}

func TestFileSourceEmptyCollection(t *testing.T) {
	tasks, err := NewFileSource(filepath.Join("testdata", "empty.json")).LoadTaskCollection(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestFileSourceUnavailable(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"missing file", "does-not-exist.json"},
		{"malformed json", "malformed.json"},
		{"no tasks field", "no_tasks.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := NewFileSource(filepath.Join("testdata", tt.file)).LoadTaskCollection(context.Background())

			require.Error(t, err)
			assert.Nil(t, tasks)
			assert.Equal(t, apperrors.KindDataUnavailable, apperrors.KindOf(err))
		})
	}
}

func TestDecodeTasksRejectsNullTasks(t *testing.T) {
	_, err := decodeTasks([]byte(`{"tasks": null}`))

	assert.ErrorIs(t, err, apperrors.ErrDataUnavailable)
}

func TestDecodeTasksRejectsBadID(t *testing.T) {
	_, err := decodeTasks([]byte(`{"tasks": [{"id": true}]}`))

	assert.ErrorIs(t, err, apperrors.ErrDataUnavailable)
}

func TestFileSourceKeepsTaskMasterFields(t *testing.T) {
	tasks, err := NewFileSource(filepath.Join("testdata", "taskmaster.json")).LoadTaskCollection(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, "Use the HAS_PARENT relation.", task.Details)
	assert.Equal(t, "Run against a container.", task.TestStrategy)
	assert.Equal(t, []models.ID{"2", "3"}, task.Dependencies)
	assert.Equal(t, []models.Subtask{
		{
			ID:           "1",
			Title:        "Query",
			Description:  "Write the Cypher query",
			Status:       models.StatusDone,
			Details:      "Order by position then id.",
			TestStrategy: "Seed three nodes.",
			Dependencies: []models.ID{},
		},
		{
			ID:           "2",
			Title:        "Mapping",
			Description:  "Map records to tasks",
			Status:       "pending",
			Dependencies: []models.ID{"4.1"},
		},
	}, task.Subtasks)

	out, err := json.Marshal(task.Subtasks[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","title":"Query","description":"Write the Cypher query","status":"done",
		"details":"Order by position then id.","testStrategy":"Seed three nodes."}`, string(out))
}
