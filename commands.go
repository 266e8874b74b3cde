package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"taskmaster-go/app/config"
	"taskmaster-go/app/server"
	"taskmaster-go/app/services"
	"taskmaster-go/app/storage"
	"taskmaster-go/app/viewer"
)

// loadConfig reads the environment and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("tasks-file") {
		cfg.TasksFile, _ = flags.GetString("tasks-file")
		cfg.TaskSource = config.SourceFile
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			source, closeSource, err := storage.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeSource()

			srv := server.New(cfg, services.NewTaskService(source), Version, os.Stdout)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntP("port", "p", 3001, "listen port (overrides PORT)")
	cmd.Flags().StringP("tasks-file", "f", "", "tasks JSON file (overrides TASKS_FILE)")

	return cmd
}

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate the configured task source once and print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			source, closeSource, err := storage.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeSource()

			result, err := services.NewTaskService(source).Summary(ctx)
			if err != nil {
				return fmt.Errorf("failed to load tasks: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringP("tasks-file", "f", "", "tasks JSON file (overrides TASKS_FILE)")

	return cmd
}

func viewCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the task list served by a running backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			client := viewer.NewClient(baseURL, nil)
			health, err := client.Health(ctx)
			if err != nil {
				return fmt.Errorf("backend unreachable: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n", health.Service, health.Version, health.Status)
			if echo, err := client.Echo(ctx); err == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), echo.Message)
			}

			result, err := client.Tasks(ctx)
			if err != nil {
				return err
			}
			return viewer.Render(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&baseURL, "url", "u", "http://localhost:3001", "backend base URL")

	return cmd
}
