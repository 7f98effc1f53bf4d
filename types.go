package recipebook

import (
	"context"

	"recipebook/tools"
)

type SlackClient interface {
	PostMessage(ctx context.Context, channel string, message string) error
	PostRecipe(ctx context.Context, channel string, r ScaledRecipe) error
}

type ToolProvider interface {
	GetTools() []tools.Tool
	GetTool(name string) (tools.Tool, error)
}

type Scaler interface {
	Run(ctx context.Context, req ScaleRequest) (ScaledRecipe, error)
}

// ScaleRequest asks for a stored recipe rendered at a given yield and unit
// system. A zero OriginalServings defers to the recipe's own yield.
type ScaleRequest struct {
	Recipe           string  `json:"recipe"`
	Servings         float64 `json:"servings"`
	OriginalServings float64 `json:"original_servings,omitempty"`
	Metric           bool    `json:"metric"`
}

// ScaledRecipe is a recipe with its ingredient lines rewritten for the
// requested yield and unit system.
type ScaledRecipe struct {
	Name             string   `json:"name"`
	Category         string   `json:"category,omitempty"`
	Servings         float64  `json:"servings"`
	OriginalServings float64  `json:"original_servings"`
	Metric           bool     `json:"metric"`
	Ingredients      []string `json:"ingredients"`
	Instructions     []string `json:"instructions"`
}

// IsValid checks the minimum a caller needs to render the recipe.
func (r *ScaledRecipe) IsValid() bool {
	if r.Name == "" {
		return false
	}

	if r.Servings <= 0 || r.OriginalServings <= 0 {
		return false
	}

	if len(r.Ingredients) == 0 {
		return false
	}

	for _, ing := range r.Ingredients {
		if ing == "" {
			return false
		}
	}

	return true
}

// Recipe converts r back into the stored document shape.
func (r *ScaledRecipe) Recipe() tools.Recipe {
	return tools.Recipe{
		Name:         r.Name,
		Category:     r.Category,
		Servings:     r.Servings,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
	}
}
