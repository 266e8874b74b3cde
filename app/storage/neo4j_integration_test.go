package storage

import (
	"context"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcneo4j "github.com/testcontainers/testcontainers-go/modules/neo4j"

	"taskmaster-go/app/config"
	"taskmaster-go/app/models"
)

const seedTasksQuery = `
CREATE (t2:Task {id: "2", title: "Second", status: "pending", position: 2})
CREATE (t1:Task {id: "1", title: "First", description: "root", status: "in-progress", priority: "high", position: 1})
CREATE (t3:Task {id: "3", title: "Unordered", status: "done"})
CREATE (:Task {id: "1.2", title: "Later", status: "pending", position: 2})-[:HAS_PARENT]->(t1)
CREATE (:Task {id: "1.1", title: "Earlier", description: "first step", details: "seeded", status: "done", position: 1})-[:HAS_PARENT]->(t1)
`

func startNeo4j(t *testing.T) (*Neo4jSource, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping neo4j container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcneo4j.Run(ctx, "neo4j:5", tcneo4j.WithAdminPassword("password123"))
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.BoltUrl(ctx)
	require.NoError(t, err)

	src, closeFn, err := Open(ctx, config.Config{
		TaskSource: config.SourceNeo4j,
		Neo4j:      config.Neo4jConfig{URI: uri, Username: "neo4j", Password: "password123"},
	})
	require.NoError(t, err)

	return src.(*Neo4jSource), closeFn
}

func seed(t *testing.T, src *Neo4jSource, query string) {
	t.Helper()
	ctx := context.Background()
	session := src.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}
		return res.Consume(ctx)
	})
	require.NoError(t, err)
}

func TestNeo4jSourceLoadsTaskGraph(t *testing.T) {
	src, closeFn := startNeo4j(t)
	defer closeFn()
	ctx := context.Background()

	t.Run("empty graph", func(t *testing.T) {
		tasks, err := src.LoadTaskCollection(ctx)

		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	seed(t, src, seedTasksQuery)

	t.Run("ordered with subtasks", func(t *testing.T) {
		tasks, err := src.LoadTaskCollection(ctx)
		require.NoError(t, err)

		require.Len(t, tasks, 3, "subtask nodes are not top-level tasks")
		assert.Equal(t, models.ID("3"), tasks[0].ID, "missing position sorts first")
		assert.Equal(t, models.ID("1"), tasks[1].ID)
		assert.Equal(t, models.ID("2"), tasks[2].ID)

		first := tasks[1]
		assert.Equal(t, "root", first.Description)
		assert.Equal(t, models.PriorityHigh, first.Priority)
		assert.Equal(t, []models.Subtask{
			{ID: "1.1", Title: "Earlier", Description: "first step", Status: models.StatusDone, Details: "seeded"},
			{ID: "1.2", Title: "Later", Status: "pending"},
		}, first.Subtasks)

		assert.Nil(t, tasks[0].Subtasks)
		assert.Nil(t, tasks[2].Subtasks)
	})
}
