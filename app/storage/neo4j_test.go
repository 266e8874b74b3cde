package storage

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster-go/app/models"
)

var recordKeys = []string{"id", "title", "description", "status", "priority", "subtasks"}

func TestTaskFromRecord(t *testing.T) {
	record := &neo4j.Record{
		Keys: recordKeys,
		Values: []any{
			"1", "Set up", "first task", "done", "high",
			[]any{
				map[string]any{"id": "1.1", "title": "a", "description": "sub a", "status": "done", "details": "do a"},
				map[string]any{"id": int64(2), "title": "b", "status": "pending"},
			},
		},
	}

	task, err := taskFromRecord(record)
	require.NoError(t, err)

	assert.Equal(t, models.ID("1"), task.ID)
	assert.Equal(t, "Set up", task.Title)
	assert.Equal(t, "first task", task.Description)
	assert.Equal(t, models.StatusDone, task.Status)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Equal(t, []models.Subtask{
		{ID: "1.1", Title: "a", Description: "sub a", Status: models.StatusDone, Details: "do a"},
		{ID: "2", Title: "b", Status: "pending"},
	}, task.Subtasks)
}

func TestTaskFromRecordNullProperties(t *testing.T) {
	record := &neo4j.Record{
		Keys:   recordKeys,
		Values: []any{int64(7), "Lonely", nil, nil, nil, []any{}},
	}

	task, err := taskFromRecord(record)
	require.NoError(t, err)

	assert.Equal(t, models.ID("7"), task.ID)
	assert.Empty(t, task.Description)
	assert.Empty(t, task.Status)
	assert.Nil(t, task.Subtasks)
}

func TestTaskFromRecordRejectsMissingID(t *testing.T) {
	record := &neo4j.Record{
		Keys:   recordKeys,
		Values: []any{nil, "No id", nil, nil, nil, []any{}},
	}

	_, err := taskFromRecord(record)

	assert.Error(t, err)
}

func TestTaskFromRecordRejectsBadSubtask(t *testing.T) {
	record := &neo4j.Record{
		Keys:   recordKeys,
		Values: []any{"1", "Bad", nil, nil, nil, []any{"not a map"}},
	}

	_, err := taskFromRecord(record)

	assert.Error(t, err)
}
