package storage

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"taskmaster-go/app/apperrors"
	"taskmaster-go/app/models"
)

// Top-level tasks are (:Task) nodes without a parent; subtasks hang off
// them through [:HAS_PARENT].
const loadTasksQuery = "MATCH (t:Task) WHERE NOT (t)-[:HAS_PARENT]->(:Task) " +
	"OPTIONAL MATCH (s:Task)-[:HAS_PARENT]->(t) " +
	"WITH t, s ORDER BY coalesce(s.position, 0), s.id " +
	"WITH t, collect(CASE WHEN s IS NULL THEN NULL ELSE {id: s.id, title: s.title, description: s.description, status: s.status, details: s.details} END) AS subtasks " +
	"RETURN t.id AS id, t.title AS title, t.description AS description, " +
	"t.status AS status, t.priority AS priority, subtasks " +
	"ORDER BY coalesce(t.position, 0), t.id"

// Neo4jSource reads a read-only mirror of the task collection from Neo4j.
type Neo4jSource struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewNeo4jSource creates a Neo4jSource on top of an open driver.
func NewNeo4jSource(driver neo4j.DriverWithContext, database string) *Neo4jSource {
	return &Neo4jSource{driver: driver, database: database}
}

// LoadTaskCollection retrieves all top-level tasks with their subtasks.
func (s *Neo4jSource) LoadTaskCollection(ctx context.Context) (models.TaskCollection, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.database,
	})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, loadTasksQuery, nil)
		if err != nil {
			return nil, err
		}

		tasks := models.TaskCollection{}
		for res.Next(ctx) {
			task, err := taskFromRecord(res.Record())
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, task)
		}
		if err := res.Err(); err != nil {
			return nil, err
		}
		return tasks, nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindDataUnavailable, "query neo4j tasks", err)
	}

	return result.(models.TaskCollection), nil
}

func taskFromRecord(record *neo4j.Record) (models.Task, error) {
	id, err := idValue(record, "id")
	if err != nil {
		return models.Task{}, err
	}
	task := models.Task{
		ID:          id,
		Title:       stringValue(record, "title"),
		Description: stringValue(record, "description"),
		Status:      models.Status(stringValue(record, "status")),
		Priority:    models.Priority(stringValue(record, "priority")),
	}

	raw, _ := record.Get("subtasks")
	items, _ := raw.([]any)
	for _, item := range items {
		props, ok := item.(map[string]any)
		if !ok {
			return models.Task{}, fmt.Errorf("task %s: unexpected subtask value %T", id, item)
		}
		subID, err := propID(props["id"])
		if err != nil {
			return models.Task{}, fmt.Errorf("task %s: %w", id, err)
		}
		title, _ := props["title"].(string)
		description, _ := props["description"].(string)
		status, _ := props["status"].(string)
		details, _ := props["details"].(string)
		task.Subtasks = append(task.Subtasks, models.Subtask{
			ID:          subID,
			Title:       title,
			Description: description,
			Status:      models.Status(status),
			Details:     details,
		})
	}
	return task, nil
}

func stringValue(record *neo4j.Record, key string) string {
	v, _ := record.Get(key)
	s, _ := v.(string)
	return s
}

func idValue(record *neo4j.Record, key string) (models.ID, error) {
	v, _ := record.Get(key)
	return propID(v)
}

// propID accepts string or integer node ids.
func propID(v any) (models.ID, error) {
	switch id := v.(type) {
	case string:
		return models.ID(id), nil
	case int64:
		return models.ID(fmt.Sprint(id)), nil
	default:
		return "", fmt.Errorf("unexpected id value %v (%T)", v, v)
	}
}
