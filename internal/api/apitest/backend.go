// Package apitest runs an in-memory ModelHub backend for tests.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/marouane-chirane/ModelHub/internal/api"
)

// BasePath is where the backend mounts its routes, mirroring the real API.
const BasePath = "/api/v1"

// Request is one call observed by the backend.
type Request struct {
	Method string
	Route  string
	Path   string
}

// UploadRecord is a file received by train or predict.
type UploadRecord struct {
	ModelID  int
	Filename string
	Content  string
}

// Backend is a thread-safe fake of the model registry.
type Backend struct {
	mu            sync.Mutex
	models        []api.Model
	nextID        int
	requests      []Request
	uploads       []UploadRecord
	failures      map[string]int
	rawList       []byte
	trainAccuracy float64
	server        *httptest.Server
}

// New starts a backend seeded with models and stops it when the test ends.
func New(t testing.TB, models ...api.Model) *Backend {
	t.Helper()
	b := &Backend{
		models:        append([]api.Model(nil), models...),
		failures:      make(map[string]int),
		trainAccuracy: 0.85,
	}
	for _, m := range models {
		if m.ID >= b.nextID {
			b.nextID = m.ID
		}
	}

	router := mux.NewRouter()
	sub := router.PathPrefix(BasePath).Subrouter()
	sub.Use(b.record)
	sub.HandleFunc("/models", b.listModels).Methods(http.MethodGet)
	sub.HandleFunc("/models", b.createModel).Methods(http.MethodPost)
	sub.HandleFunc("/models/{id:[0-9]+}", b.getModel).Methods(http.MethodGet)
	sub.HandleFunc("/models/{id:[0-9]+}", b.updateModel).Methods(http.MethodPut)
	sub.HandleFunc("/models/{id:[0-9]+}", b.deleteModel).Methods(http.MethodDelete)
	sub.HandleFunc("/models/{id:[0-9]+}/train", b.trainModel).Methods(http.MethodPost)
	sub.HandleFunc("/models/{id:[0-9]+}/predict", b.predict).Methods(http.MethodPost)

	b.server = httptest.NewServer(router)
	t.Cleanup(b.server.Close)
	return b
}

// URL is the API base to hand to api.NewClient.
func (b *Backend) URL() string {
	return b.server.URL + BasePath
}

// Fail makes every call to "METHOD /route" answer with status. Routes use the
// mux templates without the base path, e.g. "POST /models/{id}/train".
func (b *Backend) Fail(route string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = status
}

// ServeRawList replaces the GET /models body with raw bytes.
func (b *Backend) ServeRawList(raw string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rawList = []byte(raw)
}

// SetTrainAccuracy sets the accuracy a train call attaches to the model.
func (b *Backend) SetTrainAccuracy(acc float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trainAccuracy = acc
}

// SetModels replaces the registry content.
func (b *Backend) SetModels(models ...api.Model) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.models = append([]api.Model(nil), models...)
}

// Models returns a copy of the registry content.
func (b *Backend) Models() []api.Model {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]api.Model(nil), b.models...)
}

// Requests returns every call observed so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

// Count returns how many calls matched "METHOD /route". An empty route counts
// everything.
func (b *Backend) Count(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if route == "" || r.Method+" "+r.Route == route {
			n++
		}
	}
	return n
}

// Uploads returns the files received by train and predict.
func (b *Backend) Uploads() []UploadRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]UploadRecord(nil), b.uploads...)
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = strings.TrimPrefix(tpl, BasePath)
				route = strings.Replace(route, "{id:[0-9]+}", "{id}", 1)
			}
		}
		b.mu.Lock()
		b.requests = append(b.requests, Request{Method: r.Method, Route: route, Path: r.URL.Path})
		status, failing := b.failures[r.Method+" "+route]
		b.mu.Unlock()

		if failing {
			writeJSON(w, status, map[string]string{"detail": "forced failure"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) listModels(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	raw := b.rawList
	models := append([]api.Model{}, b.models...)
	b.mu.Unlock()

	if raw != nil {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(raw)
		return
	}
	writeJSON(w, http.StatusOK, models)
}

func (b *Backend) createModel(w http.ResponseWriter, r *http.Request) {
	var req api.ModelCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return
	}
	b.mu.Lock()
	b.nextID++
	model := api.Model{
		ID:              b.nextID,
		Name:            req.Name,
		Type:            req.Type,
		Framework:       req.Framework,
		Description:     req.Description,
		Hyperparameters: req.Hyperparameters,
	}
	b.models = append(b.models, model)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, model)
}

func (b *Backend) getModel(w http.ResponseWriter, r *http.Request) {
	b.withModel(w, r, func(m *api.Model) (int, any) {
		return http.StatusOK, *m
	})
}

func (b *Backend) updateModel(w http.ResponseWriter, r *http.Request) {
	var req api.ModelUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return
	}
	b.withModel(w, r, func(m *api.Model) (int, any) {
		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.Type != nil {
			m.Type = *req.Type
		}
		if req.Description != nil {
			m.Description = *req.Description
		}
		if req.Hyperparameters != nil {
			m.Hyperparameters = req.Hyperparameters
		}
		return http.StatusOK, *m
	})
}

func (b *Backend) deleteModel(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, m := range b.models {
		if m.ID == id {
			b.models = append(b.models[:i], b.models[i+1:]...)
			writeJSON(w, http.StatusOK, api.ActionResult{Message: "Model deleted successfully"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Model not found"})
}

func (b *Backend) trainModel(w http.ResponseWriter, r *http.Request) {
	upload, ok := b.readUpload(w, r)
	if !ok {
		return
	}
	b.withModel(w, r, func(m *api.Model) (int, any) {
		b.uploads = append(b.uploads, upload)
		m.Metrics = map[string]any{"accuracy": b.trainAccuracy}
		return http.StatusOK, api.ActionResult{Message: "Model trained successfully"}
	})
}

func (b *Backend) predict(w http.ResponseWriter, r *http.Request) {
	upload, ok := b.readUpload(w, r)
	if !ok {
		return
	}
	b.withModel(w, r, func(m *api.Model) (int, any) {
		b.uploads = append(b.uploads, upload)
		var predictions []any
		for _, line := range strings.Split(strings.TrimSpace(upload.Content), "\n") {
			if strings.TrimSpace(line) != "" {
				predictions = append(predictions, m.Accuracy())
			}
		}
		return http.StatusOK, api.PredictionResult{Predictions: predictions}
	})
}

func (b *Backend) readUpload(w http.ResponseWriter, r *http.Request) (UploadRecord, bool) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "file is required"})
		return UploadRecord{}, false
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return UploadRecord{}, false
	}
	return UploadRecord{ModelID: id, Filename: header.Filename, Content: string(content)}, true
}

// withModel runs fn on the model named by the id route variable under the lock.
func (b *Backend) withModel(w http.ResponseWriter, r *http.Request, fn func(*api.Model) (int, any)) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	b.mu.Lock()
	for i := range b.models {
		if b.models[i].ID == id {
			status, body := fn(&b.models[i])
			b.mu.Unlock()
			writeJSON(w, status, body)
			return
		}
	}
	b.mu.Unlock()
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Model not found"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
