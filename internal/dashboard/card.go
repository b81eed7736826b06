package dashboard

import (
	"github.com/marouane-chirane/ModelHub/internal/api"
)

// NoDescription replaces an absent model description on a card.
const NoDescription = "No description"

// ActionKind names what a card button does.
type ActionKind string

const (
	ActionTrain  ActionKind = "train"
	ActionDelete ActionKind = "delete"
)

// Action is a card control bound to one model id.
type Action struct {
	Kind    ActionKind `json:"kind"`
	ModelID int        `json:"modelId"`
}

// Card summarizes one model with its two controls.
type Card struct {
	ModelID     int     `json:"modelId"`
	Name        string  `json:"name"`
	Type        string  `json:"type,omitempty"`
	Framework   string  `json:"framework"`
	Description string  `json:"description"`
	Trained     bool    `json:"trained"`
	Accuracy    float64 `json:"accuracy"`
	Train       Action  `json:"train"`
	Delete      Action  `json:"delete"`
}

// RenderCard builds the card of m.
func RenderCard(m api.Model) Card {
	desc := m.Description
	if desc == "" {
		desc = NoDescription
	}
	return Card{
		ModelID:     m.ID,
		Name:        m.Name,
		Type:        m.Type,
		Framework:   m.Framework,
		Description: desc,
		Trained:     m.Trained(),
		Accuracy:    m.Accuracy(),
		Train:       Action{Kind: ActionTrain, ModelID: m.ID},
		Delete:      Action{Kind: ActionDelete, ModelID: m.ID},
	}
}

// RenderCards builds one card per model, in order.
func RenderCards(models []api.Model) []Card {
	cards := make([]Card, 0, len(models))
	for _, m := range models {
		cards = append(cards, RenderCard(m))
	}
	return cards
}
