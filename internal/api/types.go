// internal/api/types.go
package api

import (
	"time"
)

// Model is one record of the backend's model registry.
type Model struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	Framework       string         `json:"framework"`
	Description     string         `json:"description,omitempty"`
	Hyperparameters map[string]any `json:"hyperparameters,omitempty"`
	Metrics         map[string]any `json:"metrics,omitempty"`
	CreatedAt       *time.Time     `json:"created_at,omitempty"`
}

// Trained reports whether the backend attached metrics to the model. An empty
// metrics object still counts.
func (m Model) Trained() bool {
	return m.Metrics != nil
}

// Accuracy returns the accuracy metric, or 0 when it is absent or not a number.
func (m Model) Accuracy() float64 {
	if m.Metrics == nil {
		return 0
	}
	switch v := m.Metrics["accuracy"].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// ModelCreate is the body of POST /models.
type ModelCreate struct {
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	Framework       string         `json:"framework"`
	Description     string         `json:"description"`
	Hyperparameters map[string]any `json:"hyperparameters"`
}

// ModelUpdate is the body of PUT /models/{id}. Nil fields are left unchanged
// by the backend.
type ModelUpdate struct {
	Name            *string        `json:"name,omitempty"`
	Type            *string        `json:"type,omitempty"`
	Description     *string        `json:"description,omitempty"`
	Hyperparameters map[string]any `json:"hyperparameters,omitempty"`
}

// Empty reports whether the update carries no field at all.
func (u ModelUpdate) Empty() bool {
	return u.Name == nil && u.Type == nil && u.Description == nil && u.Hyperparameters == nil
}

// ActionResult is the message body returned by train and delete.
type ActionResult struct {
	Message string `json:"message"`
}

// PredictionResult is the body returned by POST /models/{id}/predict.
type PredictionResult struct {
	Predictions []any `json:"predictions"`
}
