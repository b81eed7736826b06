// internal/dashboard/controller.go
// Package dashboard holds the state and operations of the ModelHub dashboard.
// Both the terminal program and the command tree drive the same Controller.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/marouane-chirane/ModelHub/internal/api"
	"github.com/marouane-chirane/ModelHub/internal/logging"
)

// Alert texts shown by the controller.
const (
	MsgLoadDashboardFailed = "Failed to load dashboard"
	MsgLoadModelsFailed    = "Failed to load models"
	MsgLoadModelFailed     = "Failed to load model"
	MsgCreated             = "Model created successfully"
	MsgCreateFailed        = "Failed to create model"
	MsgSelectUpload        = "Please select a training data file"
	MsgTrained             = "Training completed successfully"
	MsgTrainFailed         = "Training failed"
	MsgDeleted             = "Model deleted successfully"
	MsgDeleteFailed        = "Failed to delete model"
	MsgUpdated             = "Model updated successfully"
	MsgUpdateFailed        = "Failed to update model"
	MsgNothingToUpdate     = "Nothing to update"
	MsgPredictFailed       = "Prediction failed"
)

// DefaultAlertWindow is how long an alert stays visible when no window is configured.
const DefaultAlertWindow = 5 * time.Second

var (
	// ErrNoUpload is returned by train and predict when no file is selected.
	ErrNoUpload = errors.New("no upload selected")
	// ErrDeclined is returned by DeleteModel when the confirmer says no.
	ErrDeclined = errors.New("deletion declined")
)

// ModelService is the backend surface the controller needs. *api.Client implements it.
type ModelService interface {
	ListModels(ctx context.Context) ([]api.Model, error)
	GetModel(ctx context.Context, id int) (api.Model, error)
	CreateModel(ctx context.Context, req api.ModelCreate) (api.Model, error)
	UpdateModel(ctx context.Context, id int, req api.ModelUpdate) (api.Model, error)
	DeleteModel(ctx context.Context, id int) error
	TrainModel(ctx context.Context, id int, upload api.Upload) (api.ActionResult, error)
	Predict(ctx context.Context, id int, upload api.Upload) (api.PredictionResult, error)
}

// Options tunes a Controller. The zero value is usable.
type Options struct {
	AlertWindow time.Duration
	Now         func() time.Time
	// OnChange receives a snapshot after every state mutation. It is called
	// without the controller lock held.
	OnChange func(State)
}

// Controller applies backend results to the dashboard State.
type Controller struct {
	svc      ModelService
	window   time.Duration
	now      func() time.Time
	onChange func(State)

	mu       sync.Mutex
	state    State
	seq      uint64
	inflight int
}

// New returns a Controller backed by svc.
func New(svc ModelService, opts Options) *Controller {
	c := &Controller{
		svc:      svc,
		window:   opts.AlertWindow,
		now:      opts.Now,
		onChange: opts.OnChange,
	}
	if c.window <= 0 {
		c.window = DefaultAlertWindow
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// AlertWindow is the visibility window applied to every alert.
func (c *Controller) AlertWindow() time.Duration {
	return c.window
}

// SetOnChange replaces the change hook. The terminal program installs it after
// the bubbletea program exists.
func (c *Controller) SetOnChange(fn func(State)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Snapshot returns a copy of the current state. An alert whose window has
// elapsed is left out.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	s := c.state.clone()
	if s.Alert != nil && s.Alert.Expired(c.now(), c.window) {
		s.Alert = nil
	}
	return s
}

// update mutates the state under the lock and notifies the change hook.
func (c *Controller) update(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	snap := c.snapshotLocked()
	hook := c.onChange
	c.mu.Unlock()
	if hook != nil {
		hook(snap)
	}
}

// showAlert replaces the current alert. Each alert gets a fresh sequence
// number and its own full window.
func (c *Controller) showAlert(severity Severity, message string) {
	logging.LogEvent("[ALERT] severity=%s message=%q", severity, message)
	c.update(func(s *State) {
		c.seq++
		s.Alert = &Alert{Seq: c.seq, Message: message, Severity: severity, ShownAt: c.now()}
	})
}

// DismissAlert hides the alert numbered seq if it is still the current one.
func (c *Controller) DismissAlert(seq uint64) {
	c.mu.Lock()
	if c.state.Alert == nil || c.state.Alert.Seq != seq {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	c.update(func(s *State) {
		if s.Alert != nil && s.Alert.Seq == seq {
			s.Alert = nil
		}
	})
}

// Initialize loads the summary and the card list concurrently and waits for
// both.
func (c *Controller) Initialize(ctx context.Context) error {
	var wg sync.WaitGroup
	var summaryErr, listErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		summaryErr = c.LoadSummary(ctx)
	}()
	go func() {
		defer wg.Done()
		listErr = c.LoadModelList(ctx)
	}()
	wg.Wait()
	return errors.Join(summaryErr, listErr)
}

// LoadSummary refreshes the total and trained counts and the chart bars.
func (c *Controller) LoadSummary(ctx context.Context) error {
	models, err := c.svc.ListModels(ctx)
	if err != nil {
		c.showAlert(SeverityDanger, MsgLoadDashboardFailed)
		return fmt.Errorf("load summary: %w", err)
	}
	summary := summarize(models)
	c.update(func(s *State) { s.Summary = summary })
	return nil
}

// LoadModelList replaces the cards with one card per model in server order.
func (c *Controller) LoadModelList(ctx context.Context) error {
	models, err := c.svc.ListModels(ctx)
	if err != nil {
		c.showAlert(SeverityDanger, MsgLoadModelsFailed)
		return fmt.Errorf("load models: %w", err)
	}
	cards := RenderCards(models)
	c.update(func(s *State) { s.Cards = cards })
	return nil
}

// reloadAll refreshes the card list and the summary concurrently.
func (c *Controller) reloadAll(ctx context.Context) {
	_ = c.Initialize(ctx)
}

// CreateModel submits form. On success the list is reloaded and the form is
// reset; on failure the form is left as typed.
func (c *Controller) CreateModel(ctx context.Context, form *Form) error {
	req, err := form.Request()
	if err != nil {
		c.showAlert(SeverityDanger, "Invalid hyperparameters: "+hyperparameterDetail(err))
		return err
	}

	if _, err := c.svc.CreateModel(ctx, req); err != nil {
		c.showAlert(SeverityDanger, failureText(err, MsgCreateFailed))
		return fmt.Errorf("create model: %w", err)
	}

	c.showAlert(SeveritySuccess, MsgCreated)
	_ = c.LoadModelList(ctx)
	form.Reset()
	return nil
}

// UpdateModel applies patch to model id and reloads list and summary.
func (c *Controller) UpdateModel(ctx context.Context, id int, patch api.ModelUpdate) error {
	if patch.Empty() {
		c.showAlert(SeverityWarning, MsgNothingToUpdate)
		return nil
	}
	if _, err := c.svc.UpdateModel(ctx, id, patch); err != nil {
		c.showAlert(SeverityDanger, failureText(err, MsgUpdateFailed))
		return fmt.Errorf("update model %d: %w", id, err)
	}
	c.showAlert(SeveritySuccess, MsgUpdated)
	c.reloadAll(ctx)
	return nil
}

// SelectUpload records path as the file for the next train or predict action.
func (c *Controller) SelectUpload(path string) {
	c.update(func(s *State) { s.Upload = path })
}

// ClearUpload forgets the selected file.
func (c *Controller) ClearUpload() {
	c.update(func(s *State) { s.Upload = "" })
}

// Run performs a card action. Delete actions ask confirm first.
func (c *Controller) Run(ctx context.Context, action Action, confirm Confirmer) error {
	switch action.Kind {
	case ActionTrain:
		return c.TrainModel(ctx, action.ModelID)
	case ActionDelete:
		return c.DeleteModel(ctx, action.ModelID, confirm)
	default:
		return fmt.Errorf("unknown action %q", action.Kind)
	}
}

// TrainModel uploads the selected file to model id. Only the summary is
// reloaded afterwards.
func (c *Controller) TrainModel(ctx context.Context, id int) error {
	err := c.withUpload(id, "Training", func(upload api.Upload) error {
		_, err := c.svc.TrainModel(ctx, id, upload)
		return err
	})
	switch {
	case errors.Is(err, ErrNoUpload):
		c.showAlert(SeverityWarning, MsgSelectUpload)
		return err
	case err != nil:
		c.showAlert(SeverityDanger, failureText(err, MsgTrainFailed))
		return fmt.Errorf("train model %d: %w", id, err)
	}
	c.showAlert(SeveritySuccess, MsgTrained)
	_ = c.LoadSummary(ctx)
	return nil
}

// Predict sends the selected file to model id and keeps the predictions.
func (c *Controller) Predict(ctx context.Context, id int) error {
	var result api.PredictionResult
	err := c.withUpload(id, "Predicting", func(upload api.Upload) error {
		var err error
		result, err = c.svc.Predict(ctx, id, upload)
		return err
	})
	switch {
	case errors.Is(err, ErrNoUpload):
		c.showAlert(SeverityWarning, MsgSelectUpload)
		return err
	case err != nil:
		c.showAlert(SeverityDanger, failureText(err, MsgPredictFailed))
		return fmt.Errorf("predict with model %d: %w", id, err)
	}
	c.update(func(s *State) {
		s.Prediction = &Prediction{ModelID: id, Values: result.Predictions}
	})
	c.showAlert(SeveritySuccess, fmt.Sprintf("Received %d predictions", len(result.Predictions)))
	return nil
}

// withUpload opens the selected file and runs send with the loading indicator
// on. The indicator stays on while any upload is in flight.
func (c *Controller) withUpload(id int, verb string, send func(api.Upload) error) error {
	path := c.Snapshot().Upload
	if path == "" {
		return ErrNoUpload
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	activity := fmt.Sprintf("%s model %d with %s", verb, id, filepath.Base(path))
	if info, err := f.Stat(); err == nil {
		activity += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(info.Size())))
	}

	c.update(func(s *State) {
		c.inflight++
		s.Loading = true
		s.Activity = activity
	})
	defer c.update(func(s *State) {
		c.inflight--
		if c.inflight <= 0 {
			c.inflight = 0
			s.Loading = false
			s.Activity = ""
		}
	})

	return send(api.Upload{Filename: filepath.Base(path), Body: f})
}

// DeleteModel removes model id after confirm agrees. A declined confirmation
// issues no request and shows no alert.
func (c *Controller) DeleteModel(ctx context.Context, id int, confirm Confirmer) error {
	if confirm != nil && !confirm.Confirm(fmt.Sprintf("Delete model %d?", id)) {
		return ErrDeclined
	}
	if err := c.svc.DeleteModel(ctx, id); err != nil {
		c.showAlert(SeverityDanger, failureText(err, MsgDeleteFailed))
		return fmt.Errorf("delete model %d: %w", id, err)
	}
	c.showAlert(SeveritySuccess, MsgDeleted)
	c.reloadAll(ctx)
	return nil
}

// ShowModel fetches model id into the detail pane.
func (c *Controller) ShowModel(ctx context.Context, id int) error {
	m, err := c.svc.GetModel(ctx, id)
	if err != nil {
		c.showAlert(SeverityDanger, failureText(err, MsgLoadModelFailed))
		return fmt.Errorf("show model %d: %w", id, err)
	}
	c.update(func(s *State) { s.Detail = &m })
	return nil
}

// CloseDetail clears the detail pane.
func (c *Controller) CloseDetail() {
	c.update(func(s *State) { s.Detail = nil })
}

// failureText picks the alert text for err: the fixed fallback for responses
// the backend rejected, the error itself for anything that never got one.
func failureText(err error, fallback string) string {
	if api.IsStatus(err) || errors.Is(err, api.ErrMalformedBody) {
		return fallback
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fallback + ": request timed out"
	}
	return err.Error()
}

// hyperparameterDetail strips the sentinel prefix from a parse error.
func hyperparameterDetail(err error) string {
	return strings.TrimPrefix(err.Error(), ErrInvalidHyperparameters.Error()+": ")
}
