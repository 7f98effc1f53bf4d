package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"recipebook/ingredient"
)

type IngredientsScale struct {
	originalServings float64
}

// NewIngredientsScale returns the tool; originalServings is used when a call
// does not state the recipe's yield (non-positive means the package default).
func NewIngredientsScale(originalServings float64) *IngredientsScale {
	if originalServings <= 0 {
		originalServings = ingredient.DefaultOriginalServings
	}
	return &IngredientsScale{originalServings: originalServings}
}

func (t *IngredientsScale) Name() string  { return "ingredients_scale" }
func (t *IngredientsScale) Title() string { return "Scale and Convert Ingredients" }
func (t *IngredientsScale) Description() string {
	return "Rescales ingredient lines from original_servings to servings and converts them to metric or imperial units."
}

func (t *IngredientsScale) InputSchema() *jsonschema.Schema {
	minServings := 0.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"ingredients":       {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			"servings":          {Type: "number", Minimum: &minServings},
			"original_servings": {Type: "number", Minimum: &minServings},
			"metric":            {Type: "boolean"},
		},
		Required: []string{"ingredients"},
	}
}

func (t *IngredientsScale) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"ingredients": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			"parsed": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"original":   {Type: "string"},
						"amount":     {Type: "number"},
						"unit":       {Type: "string"},
						"ingredient": {Type: "string"},
						"rule":       {Type: "string"},
					},
					Required: []string{"original", "ingredient"},
				},
			},
		},
		Required: []string{"ingredients", "parsed"},
	}
}

func (t *IngredientsScale) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	lines, err := stringSlice(input["ingredients"])
	if err != nil {
		return nil, fmt.Errorf("ingredients: %w", err)
	}

	original := t.originalServings
	if v, ok := input["original_servings"].(float64); ok && v > 0 {
		original = v
	}
	servings := original
	if v, ok := input["servings"].(float64); ok && v > 0 {
		servings = v
	}
	metric, _ := input["metric"].(bool)

	out := struct {
		Ingredients []string                      `json:"ingredients"`
		Parsed      []ingredient.ParsedIngredient `json:"parsed"`
	}{
		Ingredients: make([]string, 0, len(lines)),
		Parsed:      make([]ingredient.ParsedIngredient, 0, len(lines)),
	}

	for _, line := range lines {
		p := ingredient.Normalize(line, servings, original, metric)
		out.Ingredients = append(out.Ingredients, ingredient.Format(p))
		out.Parsed = append(out.Parsed, p)
	}

	// marshal -> map[string]any to keep outputs uniform
	b, _ := json.Marshal(out)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m, nil
}

// stringSlice accepts both decoded JSON arrays and native string slices.
func stringSlice(v any) ([]string, error) {
	switch s := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return s, nil
	case []any:
		out := make([]string, 0, len(s))
		for i, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("item %d is %T, not a string", i, item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected an array of strings, got %T", v)
	}
}

// ScaledFromOutput decodes an ingredients_scale result.
func ScaledFromOutput(out map[string]any) ([]string, []ingredient.ParsedIngredient, error) {
	if _, ok := out["ingredients"]; !ok {
		return nil, nil, errors.New("no 'ingredients' key in result")
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, nil, err
	}
	var res struct {
		Ingredients []string                      `json:"ingredients"`
		Parsed      []ingredient.ParsedIngredient `json:"parsed"`
	}
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, nil, fmt.Errorf("invalid scale result structure: %w", err)
	}
	if len(res.Parsed) != len(res.Ingredients) {
		return nil, nil, fmt.Errorf("scale result has %d lines but %d parsed entries", len(res.Ingredients), len(res.Parsed))
	}
	return res.Ingredients, res.Parsed, nil
}
