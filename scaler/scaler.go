// Package scaler drives the recipe tools to produce a recipe rewritten for a
// requested yield and unit system.
package scaler

import (
	"context"
	"log/slog"
	"time"

	"recipebook"
	"recipebook/ingredient"
	"recipebook/tools"

	"go.opentelemetry.io/otel"
)

const tracerName = "recipebook/scaler"

// Scaler loads a recipe, rescales its ingredient lines and records how each
// line was rewritten.
type Scaler struct {
	toolProvider     recipebook.ToolProvider
	originalServings float64
	logger           recipebook.ScaleLogger
}

// NewScaler initializes a new scaler. originalServings is the yield assumed
// for recipes that state none; non-positive means ingredient.DefaultOriginalServings.
func NewScaler(tp recipebook.ToolProvider, originalServings float64, log recipebook.ScaleLogger) *Scaler {
	return &Scaler{
		toolProvider:     tp,
		originalServings: originalServings,
		logger:           log,
	}
}

// Run executes the scaling process for a single request.
func (s *Scaler) Run(ctx context.Context, req recipebook.ScaleRequest) (recipebook.ScaledRecipe, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Scaler.Run")
	defer span.End()

	slog.Info("SCALER: Starting run", "recipe", req.Recipe, "servings", req.Servings, "metric", req.Metric)

	recipe, err := loadRecipe(ctx, s.toolProvider, req.Recipe)
	if err != nil {
		return recipebook.ScaledRecipe{}, err
	}

	p := newPlan(req, recipe, s.originalServings)
	slog.Info("SCALER: Recipe loaded",
		"recipe", recipe.Name,
		"lines", len(recipe.Ingredients),
		"original_servings", p.original,
		"servings", p.servings,
	)

	lines, parsed, err := scaleIngredients(ctx, s.toolProvider, recipe.Ingredients, p)
	if err != nil {
		return recipebook.ScaledRecipe{}, err
	}

	logLines(s.logger, req.Recipe, parsed, lines)

	st := countLines(parsed)
	slog.Info("SCALER: Run complete",
		"recipe", recipe.Name,
		"lines", st.total,
		"converted", st.converted,
		"unparsed", st.unparsed,
	)

	return p.result(recipe, lines), nil
}

// plan is the resolved yield and unit system for one run.
type plan struct {
	servings float64
	original float64
	metric   bool
}

// newPlan resolves the original yield as request override, then the recipe's
// own servings, then fallback. A missing target keeps the original yield.
func newPlan(req recipebook.ScaleRequest, recipe tools.Recipe, fallback float64) plan {
	original := fallback
	if original <= 0 {
		original = ingredient.DefaultOriginalServings
	}
	switch {
	case req.OriginalServings > 0:
		original = req.OriginalServings
	case recipe.Servings > 0:
		original = recipe.Servings
	}

	servings := req.Servings
	if servings <= 0 {
		servings = original
	}

	return plan{servings: servings, original: original, metric: req.Metric}
}

func (p plan) result(recipe tools.Recipe, lines []string) recipebook.ScaledRecipe {
	return recipebook.ScaledRecipe{
		Name:             recipe.Name,
		Category:         recipe.Category,
		Servings:         p.servings,
		OriginalServings: p.original,
		Metric:           p.metric,
		Ingredients:      lines,
		Instructions:     recipe.Instructions,
	}
}

func loadRecipe(ctx context.Context, tp recipebook.ToolProvider, name string) (tools.Recipe, error) {
	out, err := tools.Call{Name: "recipe_get", Input: map[string]any{"name": name}}.Run(ctx, tp)
	if err != nil {
		return tools.Recipe{}, err
	}
	return tools.RecipeFromOutput(out)
}

func scaleIngredients(ctx context.Context, tp recipebook.ToolProvider, lines []string, p plan) ([]string, []ingredient.ParsedIngredient, error) {
	out, err := tools.Call{
		Name: "ingredients_scale",
		Input: map[string]any{
			"ingredients":       lines,
			"servings":          p.servings,
			"original_servings": p.original,
			"metric":            p.metric,
		},
	}.Run(ctx, tp)
	if err != nil {
		return nil, nil, err
	}
	return tools.ScaledFromOutput(out)
}

type lineStats struct {
	total     int
	converted int
	unparsed  int
}

// countLines classifies the rewritten lines. A line counts as converted when
// its unit differs from the one it was written with.
func countLines(parsed []ingredient.ParsedIngredient) lineStats {
	st := lineStats{total: len(parsed)}
	for _, p := range parsed {
		if !p.HasAmount() {
			st.unparsed++
			continue
		}
		if p.Measured() && ingredient.Parse(p.Original).Unit != p.Unit {
			st.converted++
		}
	}
	return st
}

// logLines writes one record per line, handling logger errors gracefully.
func logLines(logger recipebook.ScaleLogger, recipe string, parsed []ingredient.ParsedIngredient, lines []string) {
	if logger == nil {
		return
	}
	now := time.Now()
	for i, p := range parsed {
		entry := recipebook.LineLog{
			Recipe:     recipe,
			Line:       i + 1,
			Timestamp:  now,
			Input:      p.Original,
			Output:     lines[i],
			Rule:       p.Rule,
			Amount:     p.Amount,
			Unit:       string(p.Unit),
			Ingredient: p.Ingredient,
		}
		if err := logger.LogLine(entry); err != nil {
			slog.Error("Failed to log scaled line", "error", err, "recipe", recipe, "line", entry.Line)
		}
	}
}
