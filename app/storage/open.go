package storage

import (
	"context"
	"fmt"

	"taskmaster-go/app/config"
)

// Open builds the task source named by cfg. The returned close function
// releases any connection the source holds. A Neo4j source is only returned
// once the server answers, so a bad URI or credentials fail at startup.
func Open(ctx context.Context, cfg config.Config) (TaskSource, func(), error) {
	switch cfg.TaskSource {
	case config.SourceFile:
		return NewFileSource(cfg.TasksFile), func() {}, nil
	case config.SourceNeo4j:
		driver, err := config.InitNeo4j(cfg.Neo4j)
		if err != nil {
			return nil, nil, fmt.Errorf("init neo4j: %w", err)
		}
		if err := driver.VerifyConnectivity(ctx); err != nil {
			_ = driver.Close(context.Background())
			return nil, nil, fmt.Errorf("connect neo4j %s: %w", cfg.Neo4j.URI, err)
		}
		closeFn := func() { _ = driver.Close(context.Background()) }
		return NewNeo4jSource(driver, cfg.Neo4j.Database), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown task source %q", cfg.TaskSource)
	}
}
