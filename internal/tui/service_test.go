// internal/tui/service_test.go
package tui

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/marouane-chirane/ModelHub/internal/api"
)

// testService is an in-memory implementation of dashboard.ModelService for testing purposes.
type testService struct {
	mu      sync.Mutex
	models  []api.Model
	created []api.ModelCreate
	deleted []int
	trained []int
	failAll bool
}

// newTestService creates a testService seeded with models.
func newTestService(models ...api.Model) *testService {
	return &testService{models: append([]api.Model(nil), models...)}
}

func (s *testService) calls() (created, deleted, trained int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.created), len(s.deleted), len(s.trained)
}

// ListModels returns a copy of the seeded models.
func (s *testService) ListModels(ctx context.Context) ([]api.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, errors.New("backend down")
	}
	return append([]api.Model(nil), s.models...), nil
}

// GetModel returns the model with the given id.
func (s *testService) GetModel(ctx context.Context, id int) (api.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.models {
		if m.ID == id {
			return m, nil
		}
	}
	return api.Model{}, &api.StatusError{Method: "GET", Path: "/models", StatusCode: 404}
}

// CreateModel appends a new model.
func (s *testService) CreateModel(ctx context.Context, req api.ModelCreate) (api.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, req)
	m := api.Model{ID: len(s.models) + 1, Name: req.Name, Type: req.Type, Framework: req.Framework, Description: req.Description}
	s.models = append(s.models, m)
	return m, nil
}

// UpdateModel is a no-op for the test service.
func (s *testService) UpdateModel(ctx context.Context, id int, req api.ModelUpdate) (api.Model, error) {
	return s.GetModel(ctx, id)
}

// DeleteModel removes the model with the given id.
func (s *testService) DeleteModel(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, id)
	for i, m := range s.models {
		if m.ID == id {
			s.models = append(s.models[:i], s.models[i+1:]...)
			return nil
		}
	}
	return &api.StatusError{Method: "DELETE", Path: "/models", StatusCode: 404}
}

// TrainModel drains the upload and marks the model trained.
func (s *testService) TrainModel(ctx context.Context, id int, upload api.Upload) (api.ActionResult, error) {
	_, _ = io.Copy(io.Discard, upload.Body)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trained = append(s.trained, id)
	for i := range s.models {
		if s.models[i].ID == id {
			s.models[i].Metrics = map[string]any{"accuracy": 0.8}
		}
	}
	return api.ActionResult{Message: "ok"}, nil
}

// Predict returns a single prediction.
func (s *testService) Predict(ctx context.Context, id int, upload api.Upload) (api.PredictionResult, error) {
	_, _ = io.Copy(io.Discard, upload.Body)
	return api.PredictionResult{Predictions: []any{1.0}}, nil
}
