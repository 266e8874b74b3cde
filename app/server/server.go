// Package server assembles the HTTP handler chain and runs the listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"taskmaster-go/app/config"
	"taskmaster-go/app/controllers"
	"taskmaster-go/app/middleware"
	"taskmaster-go/app/routes"
)

const defaultShutdownTimeout = 10 * time.Second

// Server is the TaskMaster HTTP backend.
type Server struct {
	cfg     config.Config
	handler http.Handler
}

// New wires routes and middleware around service. accessLog receives one
// combined-format line per request; nil disables access logging.
func New(cfg config.Config, service controllers.TaskSummarizer, version string, accessLog io.Writer) *Server {
	errs := controllers.Errors{
		Development:        cfg.IsDevelopment(),
		UnavailableMessage: unavailableMessage(cfg.TaskSource),
	}

	router := mux.NewRouter()
	routes.RegisterRoutes(router,
		controllers.NewTaskController(service, errs),
		controllers.NewSystemController(version),
	)

	var h http.Handler = router
	h = handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSOrigins),
		handlers.AllowCredentials(),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", middleware.RequestIDHeader}),
		handlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
	)(h)
	h = middleware.SecureHeaders().Handler(h)
	// Recovery sits inside the access log so panicked requests are logged
	// with their 500.
	h = middleware.Recover(errs.Panic)(h)
	if accessLog != nil {
		h = handlers.CombinedLoggingHandler(accessLog, h)
	}
	h = middleware.WithRequestID(h)

	return &Server{cfg: cfg, handler: h}
}

func unavailableMessage(source string) string {
	if source == config.SourceNeo4j {
		return "Task graph unavailable. Check the Neo4j connection settings."
	}
	return controllers.FileUnavailableMessage
}

// Handler returns the full handler chain.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Printf("TaskMaster Backend Server running on %s", srv.Addr)
	log.Printf("Environment: %s", s.cfg.EnvName())
	base := fmt.Sprintf("http://localhost:%d", s.cfg.Port)
	log.Printf("Health check: %s/health", base)
	log.Printf("Test API: %s/api/v1/test", base)
	log.Printf("Tasks API: %s/api/v1/tasks", base)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Printf("server stopped")
	return nil
}
