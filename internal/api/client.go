// internal/api/client.go
// Package api is a typed client for the ModelHub REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/marouane-chirane/ModelHub/internal/appconfig"
	"github.com/marouane-chirane/ModelHub/internal/logging"
)

// RequestIDHeader carries the per-request id that also appears in the log.
const RequestIDHeader = "X-Request-ID"

// defaultRequestTimeout defines the fallback HTTP timeout for backend calls.
const defaultRequestTimeout = 30 * time.Second

// Upload is a file sent as the multipart "file" field.
type Upload struct {
	Filename string
	Body     io.Reader
}

// Client talks to the /models endpoints under BaseURL.
type Client struct {
	BaseURL string
	client  *http.Client
	timeout time.Duration
}

// New builds a Client from the application configuration.
func New(cfg *appconfig.Config) *Client {
	return NewClient(cfg.BaseURL(), cfg.RequestTimeout())
}

// NewClient builds a Client for baseURL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// httpClient returns the explicitly configured HTTP client or the shared default client.
func (c *Client) httpClient() *http.Client {
	if c.client != nil {
		return c.client
	}
	return http.DefaultClient
}

// effectiveTimeout resolves the timeout to use for outbound HTTP requests.
func (c *Client) effectiveTimeout() time.Duration {
	if c.timeout > 0 {
		return c.timeout
	}
	return defaultRequestTimeout
}

// ListModels fetches the full model collection in server order.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	body, err := c.do(ctx, http.MethodGet, "/models", nil, "", nil)
	if err != nil {
		return nil, err
	}
	if err := validateBody(modelListSchema, body); err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	var models []Model
	if err := json.Unmarshal(body, &models); err != nil {
		return nil, fmt.Errorf("list models: %w: %v", ErrMalformedBody, err)
	}
	return models, nil
}

// GetModel fetches a single model record.
func (c *Client) GetModel(ctx context.Context, id int) (Model, error) {
	body, err := c.do(ctx, http.MethodGet, modelPath(id), nil, "", nil)
	if err != nil {
		return Model{}, err
	}
	if err := validateBody(modelSchema, body); err != nil {
		return Model{}, fmt.Errorf("get model %d: %w", id, err)
	}
	var model Model
	if err := json.Unmarshal(body, &model); err != nil {
		return Model{}, fmt.Errorf("get model %d: %w: %v", id, ErrMalformedBody, err)
	}
	return model, nil
}

// CreateModel posts a new model. Success is signalled by the status alone; the
// returned record is whatever the backend echoed, possibly zero.
func (c *Client) CreateModel(ctx context.Context, req ModelCreate) (Model, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return Model{}, fmt.Errorf("encode model: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, "/models", bytes.NewReader(payload), "application/json", req)
	if err != nil {
		return Model{}, err
	}
	return decodeEcho(body), nil
}

// UpdateModel sends a partial update for id.
func (c *Client) UpdateModel(ctx context.Context, id int, req ModelUpdate) (Model, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return Model{}, fmt.Errorf("encode model update: %w", err)
	}
	body, err := c.do(ctx, http.MethodPut, modelPath(id), bytes.NewReader(payload), "application/json", req)
	if err != nil {
		return Model{}, err
	}
	return decodeEcho(body), nil
}

// DeleteModel removes id from the registry.
func (c *Client) DeleteModel(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, modelPath(id), nil, "", nil)
	return err
}

// TrainModel uploads training data for id.
func (c *Client) TrainModel(ctx context.Context, id int, upload Upload) (ActionResult, error) {
	body, err := c.postFile(ctx, modelPath(id)+"/train", upload)
	if err != nil {
		return ActionResult{}, err
	}
	var result ActionResult
	_ = json.Unmarshal(body, &result)
	return result, nil
}

// Predict uploads input data for id and returns the backend's predictions.
func (c *Client) Predict(ctx context.Context, id int, upload Upload) (PredictionResult, error) {
	body, err := c.postFile(ctx, modelPath(id)+"/predict", upload)
	if err != nil {
		return PredictionResult{}, err
	}
	var result PredictionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return PredictionResult{}, fmt.Errorf("predict %d: %w: %v", id, ErrMalformedBody, err)
	}
	return result, nil
}

func (c *Client) postFile(ctx context.Context, path string, upload Upload) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", upload.Filename)
	if err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}
	size, err := io.Copy(part, upload.Body)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", upload.Filename, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}
	logged := map[string]any{"file": upload.Filename, "bytes": size}
	return c.do(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), logged)
}

// do executes one request against the backend with context cancellation
// support and turns non-2xx answers into *StatusError.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, logged any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.effectiveTimeout())
	defer cancel()

	endpoint := c.BaseURL + path
	requestID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	logging.LogRequest("MODELHUB->API", method, endpoint, requestID, logged)
	resp, err := c.httpClient().Do(req)
	if err != nil {
		logging.LogEvent("request %s %s failed: %v", method, endpoint, err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s %s: %w", method, path, err)
	}
	logging.LogRequest("API->MODELHUB", method, endpoint, requestID, respBody)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}

func decodeEcho(body []byte) Model {
	var model Model
	if len(bytes.TrimSpace(body)) == 0 {
		return model
	}
	if err := json.Unmarshal(body, &model); err != nil {
		return Model{}
	}
	return model
}

func modelPath(id int) string {
	return "/models/" + strconv.Itoa(id)
}
