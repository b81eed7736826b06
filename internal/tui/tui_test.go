// internal/tui/tui_test.go
package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marouane-chirane/ModelHub/internal/api"
	"github.com/marouane-chirane/ModelHub/internal/appconfig"
	"github.com/marouane-chirane/ModelHub/internal/dashboard"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, svc *testService) *model {
	t.Helper()
	cfg := &appconfig.Config{APIURL: "http://localhost:8000/api/v1"}
	ctrl := dashboard.New(svc, dashboard.Options{AlertWindow: time.Minute})
	m := initialModel(context.Background(), cfg, ctrl)
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return newModel.(*model)
}

// exec runs cmd and feeds its message back into the model.
func exec(t *testing.T, m *model, cmd tea.Cmd) *model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	msg := cmd()
	if _, ok := msg.(actionMsg); !ok {
		t.Fatalf("expected actionMsg, got %T", msg)
	}
	newModel, _ := m.Update(msg)
	return newModel.(*model)
}

func loaded(t *testing.T, svc *testService) *model {
	t.Helper()
	m := newTestModel(t, svc)
	return exec(t, m, m.run(opInit, m.ctrl.Initialize))
}

func sampleService() *testService {
	return newTestService(
		api.Model{ID: 1, Name: "iris-rf", Framework: "sklearn", Metrics: map[string]any{"accuracy": 0.9}},
		api.Model{ID: 2, Name: "mnist-cnn", Framework: "torch"},
	)
}

// TestUpdate checks the global keys and window sizing.
func TestUpdate(t *testing.T) {
	m := newTestModel(t, sampleService())

	if m.state != viewDashboard {
		t.Errorf("Expected initial state to be viewDashboard, got %v", m.state)
	}
	if m.width != 100 || m.height != 40 {
		t.Errorf("Expected width 100 and height 40, got %d and %d", m.width, m.height)
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}
}

// TestView checks the rendering of the loading screen and the loaded dashboard.
func TestView(t *testing.T) {
	m := newTestModel(t, sampleService())

	m.width = 0
	if view := m.View(); view != "Initializing..." {
		t.Errorf("Expected view to be 'Initializing...', got '%s'", view)
	}
	m.width = 100

	m = exec(t, m, m.run(opInit, m.ctrl.Initialize))
	view := m.View()
	for _, want := range []string{"Models: 2", "Trained: 1", "iris-rf", "mnist-cnn", "90.0%", "Upload: none"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestInitFailureShowsAlert(t *testing.T) {
	svc := sampleService()
	svc.failAll = true
	m := newTestModel(t, svc)
	m = exec(t, m, m.run(opInit, m.ctrl.Initialize))

	view := m.View()
	if !strings.Contains(view, "danger") {
		t.Errorf("Expected a danger alert, got:\n%s", view)
	}
	if !strings.Contains(view, dashboard.MsgLoadDashboardFailed) && !strings.Contains(view, dashboard.MsgLoadModelsFailed) {
		t.Errorf("Expected a load failure message, got:\n%s", view)
	}
}

func TestTrainWithoutUploadWarns(t *testing.T) {
	svc := sampleService()
	m := loaded(t, svc)

	_, cmd := m.Update(key("t"))
	m = exec(t, m, cmd)

	if _, _, trained := svc.calls(); trained != 0 {
		t.Fatalf("Expected no train call, got %d", trained)
	}
	if m.snap.Alert == nil || m.snap.Alert.Severity != dashboard.SeverityWarning {
		t.Fatalf("Expected warning alert, got %+v", m.snap.Alert)
	}
	if !strings.Contains(m.View(), dashboard.MsgSelectUpload) {
		t.Error("Expected the select-upload message in the view")
	}

	// esc dismisses the alert.
	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = newModel.(*model)
	if m.snap.Alert != nil {
		t.Errorf("Expected alert to be dismissed, got %+v", m.snap.Alert)
	}
}

func TestUploadPrompt(t *testing.T) {
	m := loaded(t, sampleService())

	newModel, _ := m.Update(key("u"))
	m = newModel.(*model)
	if m.state != viewUpload {
		t.Fatalf("Expected viewUpload, got %v", m.state)
	}
	newModel, _ = m.Update(key("data.csv"))
	m = newModel.(*model)
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(*model)

	if m.state != viewDashboard {
		t.Fatalf("Expected viewDashboard, got %v", m.state)
	}
	if m.snap.Upload != "data.csv" {
		t.Fatalf("Expected upload data.csv, got %q", m.snap.Upload)
	}
	if !strings.Contains(m.View(), "Upload: data.csv") {
		t.Error("Expected upload badge in view")
	}
}

func TestDeleteConfirmation(t *testing.T) {
	svc := sampleService()
	m := loaded(t, svc)

	newModel, _ := m.Update(key("d"))
	m = newModel.(*model)
	if m.state != viewConfirmDelete || m.pendingDelete != 1 {
		t.Fatalf("Expected confirm dialog for model 1, got state %v id %d", m.state, m.pendingDelete)
	}
	if !strings.Contains(m.View(), "Delete model 1?") {
		t.Error("Expected confirmation prompt in view")
	}

	newModel, cmd := m.Update(key("n"))
	m = newModel.(*model)
	if cmd != nil || m.state != viewDashboard {
		t.Fatalf("Expected declined delete to return to the dashboard without a command")
	}
	if _, deleted, _ := svc.calls(); deleted != 0 {
		t.Fatalf("Expected no delete call, got %d", deleted)
	}

	newModel, _ = m.Update(key("d"))
	m = newModel.(*model)
	_, cmd = m.Update(key("y"))
	m = exec(t, m, cmd)

	if _, deleted, _ := svc.calls(); deleted != 1 {
		t.Fatalf("Expected one delete call, got %d", deleted)
	}
	if len(m.snap.Cards) != 1 || m.snap.Summary.Total != 1 {
		t.Fatalf("Expected one card left, got %d (total %d)", len(m.snap.Cards), m.snap.Summary.Total)
	}
	if m.snap.Alert == nil || m.snap.Alert.Message != dashboard.MsgDeleted {
		t.Fatalf("Expected delete success alert, got %+v", m.snap.Alert)
	}
}

func TestCreateForm(t *testing.T) {
	svc := sampleService()
	m := loaded(t, svc)

	newModel, _ := m.Update(key("n"))
	m = newModel.(*model)
	if m.state != viewCreate {
		t.Fatalf("Expected viewCreate, got %v", m.state)
	}

	// q types into the name field instead of quitting.
	for _, k := range []string{"q", "-", "n", "e", "t"} {
		newModel, _ = m.Update(key(k))
		m = newModel.(*model)
	}
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = newModel.(*model)
	newModel, _ = m.Update(key("classification"))
	m = newModel.(*model)

	if got := m.form.Value(); got.Name != "q-net" || got.Type != "classification" {
		t.Fatalf("Unexpected form value %+v", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = exec(t, m, cmd)

	if created, _, _ := svc.calls(); created != 1 {
		t.Fatalf("Expected one create call, got %d", created)
	}
	if m.state != viewDashboard {
		t.Fatalf("Expected return to dashboard, got %v", m.state)
	}
	if got := m.form.Value(); got != (dashboard.Form{}) {
		t.Fatalf("Expected form to be reset, got %+v", got)
	}
	if len(m.snap.Cards) != 3 {
		t.Fatalf("Expected 3 cards, got %d", len(m.snap.Cards))
	}
}

func TestCreateFormInvalidHyperparametersStays(t *testing.T) {
	svc := sampleService()
	m := loaded(t, svc)

	newModel, _ := m.Update(key("n"))
	m = newModel.(*model)
	newModel, _ = m.Update(key("x"))
	m = newModel.(*model)
	m.form.params.SetValue("[1,2]")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = exec(t, m, cmd)

	if created, _, _ := svc.calls(); created != 0 {
		t.Fatalf("Expected no create call, got %d", created)
	}
	if m.state != viewCreate {
		t.Fatalf("Expected to stay on the form, got %v", m.state)
	}
	if m.form.Value().Name != "x" {
		t.Fatal("Expected form to keep its input")
	}
	if m.snap.Alert == nil || !strings.HasPrefix(m.snap.Alert.Message, "Invalid hyperparameters") {
		t.Fatalf("Expected invalid hyperparameters alert, got %+v", m.snap.Alert)
	}
}

func TestDetailView(t *testing.T) {
	m := loaded(t, sampleService())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = exec(t, m, cmd)
	if m.state != viewDetail {
		t.Fatalf("Expected viewDetail, got %v", m.state)
	}
	view := m.View()
	for _, want := range []string{"iris-rf", "accuracy: 0.9", "Hyperparameters", "none"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected detail to contain %q, got:\n%s", want, view)
		}
	}

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = newModel.(*model)
	if m.state != viewDashboard || m.ctrl.Snapshot().Detail != nil {
		t.Fatal("Expected esc to close the detail view")
	}
}

func TestAlertTickRereadsSnapshot(t *testing.T) {
	svc := sampleService()
	cfg := &appconfig.Config{}
	now := time.Now()
	clock := func() time.Time { return now }
	ctrl := dashboard.New(svc, dashboard.Options{AlertWindow: time.Second, Now: clock})
	m := initialModel(context.Background(), cfg, ctrl)

	if err := ctrl.TrainModel(context.Background(), 1); !errors.Is(err, dashboard.ErrNoUpload) {
		t.Fatalf("unexpected error %v", err)
	}
	cmd := m.apply(ctrl.Snapshot())
	if cmd == nil {
		t.Fatal("Expected an expiry tick for the new alert")
	}
	seq := m.alertSeq

	now = now.Add(2 * time.Second)
	newModel, _ := m.Update(alertExpiredMsg{seq: seq})
	m = newModel.(*model)
	if m.snap.Alert != nil {
		t.Fatalf("Expected expired alert to be hidden, got %+v", m.snap.Alert)
	}
}

func TestRenderDetailPredictions(t *testing.T) {
	out := renderDetail(
		api.Model{ID: 4, Name: "m", Hyperparameters: map[string]any{"b": 2, "a": "x"}},
		&dashboard.Prediction{ModelID: 4, Values: []any{0.1, 0.2}},
	)
	if !strings.Contains(out, "Predictions (2)") || !strings.Contains(out, "not trained") {
		t.Errorf("Unexpected detail output:\n%s", out)
	}
	if strings.Index(out, "a: \"x\"") > strings.Index(out, "b: 2") {
		t.Error("Expected hyperparameters sorted by key")
	}
	if !strings.Contains(out, dashboard.NoDescription) {
		t.Error("Expected description placeholder")
	}
}
