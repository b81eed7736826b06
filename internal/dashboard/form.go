package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/marouane-chirane/ModelHub/internal/api"
	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidHyperparameters is returned when the hyperparameter text is not a
// JSON object.
var ErrInvalidHyperparameters = errors.New("invalid hyperparameters")

var hyperparametersSchema = gojsonschema.NewGoLoader(map[string]any{
	"type": "object",
})

// Form is the create-model form. Every field is raw user text.
type Form struct {
	Name            string
	Type            string
	Framework       string
	Description     string
	Hyperparameters string
}

// Reset clears every field.
func (f *Form) Reset() {
	*f = Form{}
}

// Request converts the form into the create payload.
func (f Form) Request() (api.ModelCreate, error) {
	params, err := ParseHyperparameters(f.Hyperparameters)
	if err != nil {
		return api.ModelCreate{}, err
	}
	return api.ModelCreate{
		Name:            f.Name,
		Type:            f.Type,
		Framework:       f.Framework,
		Description:     f.Description,
		Hyperparameters: params,
	}, nil
}

// ParseHyperparameters decodes a JSON object of hyperparameters. Blank text is
// an empty object.
func ParseHyperparameters(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return map[string]any{}, nil
	}

	result, err := gojsonschema.Validate(hyperparametersSchema, gojsonschema.NewStringLoader(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHyperparameters, err)
	}
	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.Description())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidHyperparameters, strings.Join(details, "; "))
	}

	var params map[string]any
	if err := json.Unmarshal([]byte(text), &params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHyperparameters, err)
	}
	return params, nil
}
