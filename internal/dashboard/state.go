// internal/dashboard/state.go
package dashboard

import (
	"time"

	"github.com/marouane-chirane/ModelHub/internal/api"
	"github.com/marouane-chirane/ModelHub/internal/chart"
)

// Severity is the level of an alert.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Alert is the single transient notification of the dashboard.
type Alert struct {
	Seq      uint64    `json:"-"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	ShownAt  time.Time `json:"shownAt"`
}

// Expired reports whether the alert's visibility window has elapsed at now.
func (a Alert) Expired(now time.Time, window time.Duration) bool {
	return !now.Before(a.ShownAt.Add(window))
}

// Summary is the header of the dashboard: counts plus the accuracy chart.
type Summary struct {
	Total   int         `json:"total"`
	Trained int         `json:"trained"`
	Bars    []chart.Bar `json:"bars"`
}

// Prediction holds the last predictions received for a model.
type Prediction struct {
	ModelID int   `json:"modelId"`
	Values  []any `json:"values"`
}

// State is everything the views render. Each field is replaced as a whole by
// the operation that owns it.
type State struct {
	Summary    Summary     `json:"summary"`
	Cards      []Card      `json:"cards"`
	Alert      *Alert      `json:"alert,omitempty"`
	Loading    bool        `json:"loading"`
	Activity   string      `json:"activity,omitempty"`
	Upload     string      `json:"upload,omitempty"`
	Detail     *api.Model  `json:"detail,omitempty"`
	Prediction *Prediction `json:"prediction,omitempty"`
}

// clone copies s so that callers can read it without holding the controller lock.
func (s State) clone() State {
	out := s
	out.Summary.Bars = append([]chart.Bar(nil), s.Summary.Bars...)
	out.Cards = append([]Card(nil), s.Cards...)
	if s.Alert != nil {
		a := *s.Alert
		out.Alert = &a
	}
	if s.Detail != nil {
		d := *s.Detail
		out.Detail = &d
	}
	if s.Prediction != nil {
		p := *s.Prediction
		p.Values = append([]any(nil), s.Prediction.Values...)
		out.Prediction = &p
	}
	return out
}

// summarize computes the header from a model collection.
func summarize(models []api.Model) Summary {
	trained := 0
	for _, m := range models {
		if m.Trained() {
			trained++
		}
	}
	return Summary{Total: len(models), Trained: trained, Bars: chart.Bars(models)}
}
