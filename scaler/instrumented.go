package scaler

import (
	"context"
	"log/slog"
	"time"

	"recipebook"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedScaler is a Scaler that records spans and run metrics.
type InstrumentedScaler struct {
	toolProvider     recipebook.ToolProvider
	originalServings float64
	logger           recipebook.ScaleLogger
	tracer           trace.Tracer
	meter            metric.Meter
}

// NewInstrumentedScaler initializes a new instrumented scaler.
func NewInstrumentedScaler(tp recipebook.ToolProvider, originalServings float64, log recipebook.ScaleLogger, tracer trace.Tracer, meter metric.Meter) *InstrumentedScaler {
	return &InstrumentedScaler{
		toolProvider:     tp,
		originalServings: originalServings,
		logger:           log,
		tracer:           tracer,
		meter:            meter,
	}
}

// Run executes the scaling process with full instrumentation.
func (s *InstrumentedScaler) Run(ctx context.Context, req recipebook.ScaleRequest) (recipebook.ScaledRecipe, error) {
	ctx, span := s.tracer.Start(ctx, "InstrumentedScaler.Run", trace.WithAttributes(
		attribute.String("recipe", req.Recipe),
		attribute.Float64("servings", req.Servings),
		attribute.Bool("metric", req.Metric),
	))
	defer span.End()

	slog.Info("SCALER: Starting instrumented run", "recipe", req.Recipe, "servings", req.Servings, "metric", req.Metric)

	runsCounter, _ := s.meter.Int64Counter("scale_runs_total",
		metric.WithDescription("Total number of scale runs started"))
	runsFailedCounter, _ := s.meter.Int64Counter("scale_runs_failed_total",
		metric.WithDescription("Total number of scale runs that failed"))
	linesCounter, _ := s.meter.Int64Counter("ingredient_lines_total",
		metric.WithDescription("Total number of ingredient lines rewritten"))
	convertedCounter, _ := s.meter.Int64Counter("ingredient_lines_converted_total",
		metric.WithDescription("Total number of ingredient lines converted to another unit"))
	unparsedCounter, _ := s.meter.Int64Counter("ingredient_lines_unparsed_total",
		metric.WithDescription("Total number of ingredient lines with no recognizable quantity"))
	runDurationHist, _ := s.meter.Float64Histogram("scale_duration_seconds",
		metric.WithDescription("Duration of a scale run in seconds"))

	runsCounter.Add(ctx, 1)
	start := time.Now()

	fail := func(msg string, err error) (recipebook.ScaledRecipe, error) {
		runsFailedCounter.Add(ctx, 1)
		span.SetStatus(codes.Error, msg)
		span.RecordError(err)
		return recipebook.ScaledRecipe{}, err
	}

	recipe, err := loadRecipe(ctx, s.toolProvider, req.Recipe)
	if err != nil {
		return fail("Recipe load failed", err)
	}

	p := newPlan(req, recipe, s.originalServings)
	span.AddEvent("Recipe loaded", trace.WithAttributes(
		attribute.String("recipe_name", recipe.Name),
		attribute.Int("lines", len(recipe.Ingredients)),
		attribute.Float64("original_servings", p.original),
		attribute.Float64("target_servings", p.servings),
	))

	lines, parsed, err := scaleIngredients(ctx, s.toolProvider, recipe.Ingredients, p)
	if err != nil {
		return fail("Ingredient scaling failed", err)
	}

	logLines(s.logger, req.Recipe, parsed, lines)

	st := countLines(parsed)
	attrs := metric.WithAttributes(attribute.Bool("metric", p.metric))
	linesCounter.Add(ctx, int64(st.total), attrs)
	convertedCounter.Add(ctx, int64(st.converted), attrs)
	unparsedCounter.Add(ctx, int64(st.unparsed), attrs)

	duration := time.Since(start)
	runDurationHist.Record(ctx, duration.Seconds())

	span.AddEvent("Ingredients scaled", trace.WithAttributes(
		attribute.Int("lines", st.total),
		attribute.Int("converted", st.converted),
		attribute.Int("unparsed", st.unparsed),
	))

	slog.Info("SCALER: Run complete",
		"recipe", recipe.Name,
		"lines", st.total,
		"converted", st.converted,
		"unparsed", st.unparsed,
		"duration_ms", duration.Milliseconds(),
	)

	return p.result(recipe, lines), nil
}
