package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Task source names accepted by TASK_SOURCE.
const (
	SourceFile  = "file"
	SourceNeo4j = "neo4j"
)

const (
	envDevelopment = "development"
	envProduction  = "production"
)

// Config holds everything the backend needs at startup.
type Config struct {
	Host            string        `env:"HOST"`
	Port            int           `env:"PORT" envDefault:"3001"`
	Env             string        `env:"APP_ENV"`
	CORSOrigins     []string      `env:"CORS_ORIGIN" envDefault:"http://localhost:3000" envSeparator:","`
	TaskSource      string        `env:"TASK_SOURCE" envDefault:"file"`
	TasksFile       string        `env:"TASKS_FILE" envDefault:"tasks/tasks.json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Neo4j           Neo4jConfig   `envPrefix:"NEO4J_"`
}

// Neo4jConfig addresses the graph holding a read-only task mirror.
type Neo4jConfig struct {
	URI      string `env:"URI" envDefault:"neo4j://localhost:7687"`
	Username string `env:"USERNAME" envDefault:"neo4j"`
	Password string `env:"PASSWORD"`
	Database string `env:"DATABASE"`
}

// Load parses configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	return cfg, nil
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if len(c.CORSOrigins) == 0 {
		return errors.New("at least one CORS origin is required")
	}
	switch c.TaskSource {
	case SourceFile:
		if strings.TrimSpace(c.TasksFile) == "" {
			return errors.New("tasks file path is required for the file source")
		}
	case SourceNeo4j:
		if strings.TrimSpace(c.Neo4j.URI) == "" {
			return errors.New("neo4j uri is required for the neo4j source")
		}
	default:
		return fmt.Errorf("unknown task source %q", c.TaskSource)
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// IsDevelopment reports whether error details may be shown to clients.
// Only an explicit APP_ENV=development enables them.
func (c Config) IsDevelopment() bool {
	return c.Env == envDevelopment
}

// EnvName is the environment reported at startup.
func (c Config) EnvName() string {
	if c.Env == "" {
		return envProduction
	}
	return c.Env
}

func trimAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
