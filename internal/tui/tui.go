// internal/tui/tui.go
// Package tui provides the interactive terminal dashboard for ModelHub.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/marouane-chirane/ModelHub/internal/api"
	"github.com/marouane-chirane/ModelHub/internal/appconfig"
	"github.com/marouane-chirane/ModelHub/internal/chart"
	"github.com/marouane-chirane/ModelHub/internal/dashboard"
	"github.com/marouane-chirane/ModelHub/internal/logging"
)

// viewState represents the current screen of the dashboard.
type viewState int

const (
	// viewDashboard shows the summary, chart and card list.
	viewDashboard viewState = iota
	// viewCreate shows the new-model form.
	viewCreate
	// viewUpload asks for the path of the file to upload.
	viewUpload
	// viewConfirmDelete asks before deleting the selected model.
	viewConfirmDelete
	// viewDetail shows one model in full.
	viewDetail
)

// Operation names carried by actionMsg.
const (
	opInit    = "init"
	opReload  = "reload"
	opCreate  = "create"
	opTrain   = "train"
	opPredict = "predict"
	opDelete  = "delete"
	opShow    = "show"
)

// model is the Bubble Tea model of the dashboard.
type model struct {
	ctx           context.Context
	config        *appconfig.Config
	ctrl          *dashboard.Controller
	state         viewState
	snap          dashboard.State
	alertSeq      uint64
	cardList      list.Model
	spinner       spinner.Model
	form          createForm
	upload        textinput.Model
	detail        viewport.Model
	pendingDelete int
	width, height int
}

// cardItem adapts a dashboard card to the bubbles list.
type cardItem struct {
	card dashboard.Card
}

// Title returns the model name and id.
func (i cardItem) Title() string { return fmt.Sprintf("%s  #%d", i.card.Name, i.card.ModelID) }

// Description returns the framework, training status and description.
func (i cardItem) Description() string {
	status := "untrained"
	if i.card.Trained {
		status = fmt.Sprintf("trained %.1f%%", i.card.Accuracy*100)
	}
	return strings.Join([]string{i.card.Framework, status, i.card.Description}, " · ")
}

// FilterValue returns the model name.
func (i cardItem) FilterValue() string { return i.card.Name }

// stateMsg carries a controller snapshot pushed by the change hook.
type stateMsg dashboard.State

// actionMsg is sent when a controller operation started from a key finishes.
type actionMsg struct {
	op    string
	err   error
	state dashboard.State
}

// alertExpiredMsg fires when the alert numbered seq reaches the end of its window.
type alertExpiredMsg struct{ seq uint64 }

// initialModel creates the dashboard model around ctrl.
func initialModel(ctx context.Context, cfg *appconfig.Config, ctrl *dashboard.Controller) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	cards := list.New(nil, list.NewDefaultDelegate(), 80, 12)
	cards.Title = "Models"
	cards.SetShowStatusBar(false)
	cards.SetFilteringEnabled(false)
	cards.SetShowHelp(false)
	cards.DisableQuitKeybindings()

	up := textinput.New()
	up.Placeholder = "path/to/data.csv"
	up.CharLimit = 1024

	return &model{
		ctx:      ctx,
		config:   cfg,
		ctrl:     ctrl,
		state:    viewDashboard,
		snap:     ctrl.Snapshot(),
		cardList: cards,
		spinner:  s,
		form:     newCreateForm(),
		upload:   up,
		detail:   viewport.New(80, 20),
	}
}

// run wraps a controller operation in a command that reports its outcome.
func (m *model) run(op string, fn func(ctx context.Context) error) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		err := fn(ctx)
		if err != nil {
			log.Printf("[tui] %s: %v", op, err)
		}
		return actionMsg{op: op, err: err, state: ctrl.Snapshot()}
	}
}

// Init starts the spinner and the initial load.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run(opInit, m.ctrl.Initialize))
}

// selectedCard returns the card under the list cursor.
func (m *model) selectedCard() (dashboard.Card, bool) {
	it, ok := m.cardList.SelectedItem().(cardItem)
	if !ok {
		return dashboard.Card{}, false
	}
	return it.card, true
}

// apply stores a snapshot and schedules the expiry tick of a new alert.
func (m *model) apply(s dashboard.State) tea.Cmd {
	m.snap = s
	items := make([]list.Item, len(s.Cards))
	for i, c := range s.Cards {
		items[i] = cardItem{card: c}
	}
	cmd := m.cardList.SetItems(items)

	if s.Alert == nil || s.Alert.Seq == m.alertSeq {
		return cmd
	}
	m.alertSeq = s.Alert.Seq
	seq := s.Alert.Seq
	wait := time.Until(s.Alert.ShownAt.Add(m.ctrl.AlertWindow()))
	if wait < 0 {
		wait = 0
	}
	return tea.Batch(cmd, tea.Tick(wait, func(time.Time) tea.Msg {
		return alertExpiredMsg{seq: seq}
	}))
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		chartHeight := max(len(m.snap.Summary.Bars), 1)
		m.cardList.SetSize(msg.Width-4, max(msg.Height-chartHeight-9, 6))
		m.form.SetWidth(max(msg.Width-22, 20))
		m.upload.Width = max(msg.Width-10, 20)
		m.detail.Width = msg.Width - 4
		m.detail.Height = msg.Height - 4
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stateMsg:
		return m, m.apply(dashboard.State(msg))

	case actionMsg:
		cmd := m.apply(msg.state)
		switch {
		case msg.op == opCreate && msg.err == nil:
			m.form.Reset()
			m.state = viewDashboard
		case msg.op == opShow && msg.err == nil && msg.state.Detail != nil:
			m.detail.SetContent(renderDetail(*msg.state.Detail, msg.state.Prediction))
			m.detail.GotoTop()
			m.state = viewDetail
		}
		return m, cmd

	case alertExpiredMsg:
		m.snap = m.ctrl.Snapshot()
		return m, nil
	}

	switch m.state {
	case viewCreate:
		return m, m.updateCreate(msg)
	case viewUpload:
		return m, m.updateUpload(msg)
	case viewConfirmDelete:
		return m, m.updateConfirm(msg)
	case viewDetail:
		return m, m.updateDetail(msg)
	default:
		return m, m.updateDashboard(msg)
	}
}

func (m *model) updateDashboard(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.cardList, cmd = m.cardList.Update(msg)
		return cmd
	}

	switch key.String() {
	case "q":
		return tea.Quit
	case "esc":
		if m.snap.Alert != nil {
			m.ctrl.DismissAlert(m.snap.Alert.Seq)
			m.snap = m.ctrl.Snapshot()
		}
		return nil
	case "r":
		return m.run(opReload, m.ctrl.Initialize)
	case "n":
		m.state = viewCreate
		return m.form.setFocus(m.form.focus)
	case "u":
		m.state = viewUpload
		m.upload.SetValue(m.snap.Upload)
		m.upload.CursorEnd()
		return m.upload.Focus()
	}

	card, ok := m.selectedCard()
	switch key.String() {
	case "t":
		if ok {
			return m.run(opTrain, func(ctx context.Context) error {
				return m.ctrl.Run(ctx, card.Train, nil)
			})
		}
		return nil
	case "p":
		if ok {
			id := card.ModelID
			return m.run(opPredict, func(ctx context.Context) error {
				return m.ctrl.Predict(ctx, id)
			})
		}
		return nil
	case "d":
		if ok {
			m.pendingDelete = card.ModelID
			m.state = viewConfirmDelete
		}
		return nil
	case "enter":
		if ok {
			id := card.ModelID
			return m.run(opShow, func(ctx context.Context) error {
				return m.ctrl.ShowModel(ctx, id)
			})
		}
		return nil
	}

	var cmd tea.Cmd
	m.cardList, cmd = m.cardList.Update(msg)
	return cmd
}

func (m *model) updateCreate(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.state = viewDashboard
			return nil
		case "ctrl+s":
			form := m.form.Value()
			return m.run(opCreate, func(ctx context.Context) error {
				return m.ctrl.CreateModel(ctx, &form)
			})
		}
	}
	return m.form.Update(msg)
}

func (m *model) updateUpload(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.upload.Blur()
			m.state = viewDashboard
			return nil
		case "enter":
			path := strings.TrimSpace(m.upload.Value())
			if path == "" {
				m.ctrl.ClearUpload()
			} else {
				m.ctrl.SelectUpload(path)
			}
			m.snap = m.ctrl.Snapshot()
			m.upload.Blur()
			m.state = viewDashboard
			return nil
		}
	}
	var cmd tea.Cmd
	m.upload, cmd = m.upload.Update(msg)
	return cmd
}

func (m *model) updateConfirm(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "y", "Y":
		id := m.pendingDelete
		m.state = viewDashboard
		return m.run(opDelete, func(ctx context.Context) error {
			return m.ctrl.DeleteModel(ctx, id, dashboard.Always)
		})
	case "n", "N", "esc":
		m.pendingDelete = 0
		m.state = viewDashboard
	}
	return nil
}

func (m *model) updateDetail(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			m.ctrl.CloseDetail()
			m.state = viewDashboard
			return nil
		}
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return cmd
}

// View renders the UI for the current state.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var body string
	switch m.state {
	case viewCreate:
		body = m.form.View()
	case viewUpload:
		body = titleStyle.Render("Training data file") + "\n\n" + m.upload.View() + "\n\n" +
			helpStyle.Render("enter select • empty clears • esc back")
	case viewConfirmDelete:
		body = dialogStyle.Render(fmt.Sprintf("Delete model %d?\n\n(y/n)", m.pendingDelete))
	case viewDetail:
		body = m.detail.View() + "\n" + helpStyle.Render("↑/↓ scroll • esc back")
	default:
		body = m.dashboardView()
	}

	if alert := renderAlert(m.snap.Alert); alert != "" {
		body += "\n\n" + alert
	}
	if m.snap.Loading {
		body += "\n\n" + m.spinner.View() + " " + m.snap.Activity
	}
	return lipgloss.NewStyle().Margin(1, 2).Render(body)
}

func (m *model) dashboardView() string {
	var b strings.Builder
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("ModelHub"),
		renderCountsBadge(m.snap.Summary),
		renderUploadBadge(m.snap.Upload),
		renderAPIBadge(m.config.BaseURL()),
	)
	b.WriteString(header + "\n")
	b.WriteString(sectionStyle.Render("Accuracy") + "\n")
	b.WriteString(chart.RenderText(m.snap.Summary.Bars, m.width-4) + "\n\n")
	if len(m.snap.Cards) == 0 {
		b.WriteString(helpStyle.Render("No models yet. Press n to create one.") + "\n")
	} else {
		b.WriteString(m.cardList.View() + "\n")
	}
	b.WriteString(helpStyle.Render("n new • u upload file • t train • p predict • d delete • enter details • r reload • q quit"))
	return b.String()
}

// renderDetail formats one model for the detail pane.
func renderDetail(mdl api.Model, pred *dashboard.Prediction) string {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(fieldStyle.Render(label) + value + "\n")
	}

	b.WriteString(titleStyle.Render(mdl.Name) + "\n\n")
	line("ID", strconv.Itoa(mdl.ID))
	line("Type", mdl.Type)
	line("Framework", mdl.Framework)
	desc := mdl.Description
	if desc == "" {
		desc = dashboard.NoDescription
	}
	line("Description", desc)
	if mdl.CreatedAt != nil {
		line("Created", fmt.Sprintf("%s (%s)", mdl.CreatedAt.Format("2006-01-02 15:04"), humanize.Time(*mdl.CreatedAt)))
	}

	b.WriteString(sectionStyle.Render("Hyperparameters") + "\n")
	writeValues(&b, mdl.Hyperparameters)
	b.WriteString(sectionStyle.Render("Metrics") + "\n")
	if mdl.Metrics == nil {
		b.WriteString("  not trained\n")
	} else {
		writeValues(&b, mdl.Metrics)
	}

	if pred != nil && pred.ModelID == mdl.ID {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Predictions (%d)", len(pred.Values))) + "\n")
		for i, v := range pred.Values {
			b.WriteString(fmt.Sprintf("  %d: %v\n", i+1, v))
		}
	}
	return b.String()
}

// writeValues prints a JSON object one sorted key per line.
func writeValues(b *strings.Builder, values map[string]any) {
	if len(values) == 0 {
		b.WriteString("  none\n")
		return
	}
	for _, k := range slices.Sorted(maps.Keys(values)) {
		raw, err := json.Marshal(values[k])
		if err != nil {
			raw = []byte(fmt.Sprint(values[k]))
		}
		fmt.Fprintf(b, "  %s: %s\n", k, raw)
	}
}

// Start runs the interactive dashboard until the user quits.
func Start(ctx context.Context, cfg *appconfig.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is not loaded")
	}

	ctrl := dashboard.New(api.New(cfg), dashboard.Options{AlertWindow: cfg.AlertWindow()})
	m := initialModel(ctx, cfg, ctrl)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	ctrl.SetOnChange(func(s dashboard.State) {
		p.Send(stateMsg(s))
	})

	logging.LogEvent("dashboard started api=%s", cfg.BaseURL())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
