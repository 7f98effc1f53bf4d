package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"recipebook/tools/storage"
)

type RecipeGet struct{ store storage.RecipeStore }

func NewRecipeGet(store storage.RecipeStore) *RecipeGet { return &RecipeGet{store: store} }

func (t *RecipeGet) Name() string  { return "recipe_get" }
func (t *RecipeGet) Title() string { return "Get Recipe" }
func (t *RecipeGet) Description() string {
	return "Loads a stored recipe by name and returns its ingredients and instructions as written."
}

func (t *RecipeGet) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
		},
		Required: []string{"name"},
	}
}

func (t *RecipeGet) OutputSchema() *jsonschema.Schema {
	minServings := 0.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"recipe": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"name":         {Type: "string"},
					"category":     {Type: "string"},
					"servings":     {Type: "number", Minimum: &minServings},
					"ingredients":  {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
					"instructions": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
					"images":       {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
				},
				Required: []string{"name", "ingredients", "instructions"},
			},
		},
		Required: []string{"recipe"},
	}
}

func (t *RecipeGet) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	name, _ := input["name"].(string)
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("recipe name is required")
	}

	rec, err := t.load(ctx, name)
	if err != nil {
		return nil, err
	}

	// marshal -> map[string]any to keep outputs uniform
	b, _ := json.Marshal(map[string]any{"recipe": rec})
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m, nil
}

func (t *RecipeGet) load(ctx context.Context, name string) (Recipe, error) {
	key := RecipeKey(name)
	b, err := t.store.Load(ctx, key)
	if err != nil {
		return Recipe{}, fmt.Errorf("read recipe: %w", err)
	}
	rec, err := DecodeRecipe(key, b)
	if err != nil {
		return Recipe{}, fmt.Errorf("parse recipe: %w", err)
	}
	if rec.Name == "" {
		rec.Name = strings.TrimSpace(name)
	}
	return rec, nil
}

// RecipeFromOutput decodes the "recipe" entry of a recipe_get result.
func RecipeFromOutput(out map[string]any) (Recipe, error) {
	raw, ok := out["recipe"]
	if !ok {
		return Recipe{}, errors.New("no 'recipe' key in result")
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return Recipe{}, err
	}
	var r Recipe
	if err := json.Unmarshal(b, &r); err != nil {
		return Recipe{}, fmt.Errorf("invalid recipe structure: %w", err)
	}
	return r, nil
}
