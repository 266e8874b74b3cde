package controllers

import (
	"net/http"
	"time"
)

// ServiceName identifies the backend in health responses.
const ServiceName = "TaskMaster Backend"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// EchoResponse is the body of GET /api/v1/test.
type EchoResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// SystemController serves the health and test routes.
type SystemController struct {
	Version string
	Now     func() time.Time
}

// NewSystemController creates a SystemController reporting version.
func NewSystemController(version string) *SystemController {
	return &SystemController{Version: version, Now: time.Now}
}

// Health handles GET /health.
func (c *SystemController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: timestamp(c.Now),
		Service:   ServiceName,
		Version:   c.Version,
	})
}

// Test handles GET /api/v1/test.
func (c *SystemController) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, EchoResponse{
		Message:   "TaskMaster API is working!",
		Timestamp: timestamp(c.Now),
	})
}
