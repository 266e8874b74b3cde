package routes

import (
	"net/http"

	"taskmaster-go/app/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the application. Unmatched paths
// and methods both answer 404.
func RegisterRoutes(router *mux.Router, taskController *controllers.TaskController, systemController *controllers.SystemController) {
	router.HandleFunc("/health", systemController.Health).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/test", systemController.Test).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/tasks", taskController.GetTasks).Methods(http.MethodGet)

	notFound := http.HandlerFunc(taskController.Errors.NotFound)
	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = notFound
}
