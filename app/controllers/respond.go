package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"taskmaster-go/app/apperrors"
	"taskmaster-go/app/middleware"
)

// ISOTime is the timestamp layout used in responses.
const ISOTime = "2006-01-02T15:04:05.000Z"

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// FileUnavailableMessage tells the client the backing tasks file is missing
// or unreadable.
const FileUnavailableMessage = "Tasks file not found. Please generate tasks using TaskMaster AI first."

// Errors renders failures as JSON, hiding internals outside development.
type Errors struct {
	Development bool
	// UnavailableMessage is shown when the task source cannot be loaded.
	// Empty means FileUnavailableMessage.
	UnavailableMessage string
}

// Write reports err to the client according to its kind.
func (e Errors) Write(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperrors.KindOf(err)
	log.Printf("[%s] %s %s: %v", middleware.RequestID(r.Context()), r.Method, r.URL.Path, err)

	body := ErrorBody{Error: "Internal Server Error", Message: "Something went wrong"}
	switch kind {
	case apperrors.KindDataUnavailable:
		body = ErrorBody{Error: "Failed to load tasks", Message: e.UnavailableMessage}
		if body.Message == "" {
			body.Message = FileUnavailableMessage
		}
	case apperrors.KindNotFound:
		body = ErrorBody{Error: "Not Found", Message: err.Error()}
	default:
		if e.Development {
			body.Message = err.Error()
		}
	}
	writeJSON(w, kind.HTTPStatus(), body)
}

// NotFound handles any request no route matched.
func (e Errors) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorBody{
		Error:   "Not Found",
		Message: "Route " + r.URL.RequestURI() + " not found",
	})
}

// Panic reports a recovered panic as a generic server error.
func (e Errors) Panic(w http.ResponseWriter, r *http.Request, recovered any) {
	err, ok := recovered.(error)
	if !ok {
		err = apperrors.New(apperrors.KindInternal, "panic: "+stringify(recovered))
	}
	e.Write(w, r, err)
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "unknown"
	}
	return string(b)
}

func timestamp(now func() time.Time) string {
	return now().UTC().Format(ISOTime)
}
