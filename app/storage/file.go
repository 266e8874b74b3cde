// Package storage loads task collections from their backing stores.
package storage

import (
	"context"
	"encoding/json"
	"os"

	"taskmaster-go/app/apperrors"
	"taskmaster-go/app/models"
)

// TaskSource loads the full task collection. Every failure is reported as
// an apperrors.KindDataUnavailable error.
type TaskSource interface {
	LoadTaskCollection(ctx context.Context) (models.TaskCollection, error)
}

// FileSource reads tasks from a JSON document of the form {"tasks": [...]}.
// The file is read again on every call.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the backing file path.
func (s *FileSource) Path() string {
	return s.path
}

type taskDocument struct {
	Tasks *models.TaskCollection `json:"tasks"`
}

// LoadTaskCollection reads and decodes the backing file.
func (s *FileSource) LoadTaskCollection(_ context.Context) (models.TaskCollection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindDataUnavailable, "read tasks file", err)
	}
	return decodeTasks(data)
}

func decodeTasks(data []byte) (models.TaskCollection, error) {
	var doc taskDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.KindDataUnavailable, "decode tasks file", err)
	}
	if doc.Tasks == nil {
		return nil, apperrors.New(apperrors.KindDataUnavailable, "tasks file has no tasks field")
	}
	return *doc.Tasks, nil
}
