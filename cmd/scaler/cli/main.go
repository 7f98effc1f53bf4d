package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joeshaw/envdecode"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"recipebook"
	"recipebook/scaler"
	"recipebook/slack"
	"recipebook/tools"
	"recipebook/tools/storage"
)

// maxConcurrentRecipes bounds how many recipes are scaled at once.
const maxConcurrentRecipes = 4

var errIncomplete = errors.New("scaled recipe is incomplete")

func main() {
	ctx := context.Background()

	var scaleConfig recipebook.ScaleConfig
	if err := envdecode.Decode(&scaleConfig); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	var storeConfig recipebook.StoreConfig
	if err := envdecode.Decode(&storeConfig); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	var notifyConfig recipebook.NotifyConfig
	if err := envdecode.Decode(&notifyConfig); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	store := storage.NewFileRecipeStore(storeConfig.RecipesDir)
	registry, err := tools.NewRegistry(store, scaleConfig.OriginalServings)
	if err != nil {
		slog.Error("SETUP: Failed to create tool registry", "error", err)
		return
	}

	names, err := recipeNames(ctx, store, os.Args[1:])
	if err != nil {
		slog.Error("SETUP: Failed to list recipes", "error", err, "dir", storeConfig.RecipesDir)
		return
	}
	if len(names) == 0 {
		slog.Error("SETUP: No recipes found", "dir", storeConfig.RecipesDir)
		return
	}
	slog.Info("SETUP: Recipes selected", "count", len(names), "dir", storeConfig.RecipesDir)

	tracerProvider, meterProvider, otelShutdown, err := recipebook.InitOtel(ctx)
	if err != nil {
		slog.Error("SETUP: Failed to initialize OpenTelemetry", "error", err)
		return
	}
	defer func() {
		if err := otelShutdown(ctx); err != nil {
			slog.Error("SETUP: Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	tracer := tracerProvider.Tracer(recipebook.TracerNameCLI)
	meter := meterProvider.Meter(recipebook.TracerNameCLI)

	ctx, span := tracer.Start(ctx, recipebook.TracerNameCLI, trace.WithAttributes(
		attribute.Int("recipes.count", len(names)),
		attribute.Float64("servings.target", scaleConfig.TargetServings),
		attribute.Bool("units.metric", scaleConfig.UseMetric),
	))
	defer span.End()

	results, err := scaleAll(ctx, registry, names, scaleConfig, tracer, meter)
	if err != nil {
		slog.Error("FAILURE: Error scaling recipes", "error", err)
		return
	}

	for _, r := range results {
		fmt.Println(tools.FormatRecipeText(r.Recipe()))
	}

	if notifyConfig.DebugDump {
		recipebook.Dump(os.Stderr, results)
	}

	if notifyConfig.SlackWebhookURL == "" {
		return
	}

	var slackClient recipebook.SlackClient = slack.NewClient(notifyConfig.SlackWebhookURL, http.DefaultClient)
	for _, r := range results {
		if err := slackClient.PostRecipe(ctx, notifyConfig.SlackChannel, r); err != nil {
			slog.Error("RESULT: Failed to post recipe to Slack", "error", err, "recipe", r.Name)
			continue
		}
		slog.Info("RESULT: Posted recipe to Slack", "recipe", r.Name, "channel", notifyConfig.SlackChannel)
	}
}

// recipeNames returns args when given, otherwise every recipe in the store.
// Repeated names are dropped.
func recipeNames(ctx context.Context, store storage.RecipeStore, args []string) ([]string, error) {
	if len(args) == 0 {
		return store.List(ctx)
	}
	seen := make(map[string]bool, len(args))
	names := make([]string, 0, len(args))
	for _, a := range args {
		if seen[a] {
			continue
		}
		seen[a] = true
		names = append(names, a)
	}
	return names, nil
}

// scaleAll scales every recipe concurrently. Each recipe gets its own log
// file; results keep the order of names.
func scaleAll(ctx context.Context, tp recipebook.ToolProvider, names []string, cfg recipebook.ScaleConfig, tracer trace.Tracer, meter metric.Meter) ([]recipebook.ScaledRecipe, error) {
	results := make([]recipebook.ScaledRecipe, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRecipes)

	for i, name := range names {
		g.Go(func() (err error) {
			logger, cleanup, err := newScaleLogger(name)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, cleanup())
			}()

			res, err := scaler.NewInstrumentedScaler(tp, cfg.OriginalServings, logger, tracer, meter).Run(ctx, recipebook.ScaleRequest{
				Recipe:   name,
				Servings: cfg.TargetServings,
				Metric:   cfg.UseMetric,
			})
			if err != nil {
				return fmt.Errorf("scale %q: %w", name, err)
			}
			if !res.IsValid() {
				return fmt.Errorf("scale %q: %w", name, errIncomplete)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func newScaleLogger(recipe string) (recipebook.ScaleLogger, func() error, error) {
	logFilePath := recipebook.NewScaleLogFilePath(recipe)
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0o755); err != nil {
		return nil, func() error { return err }, fmt.Errorf("failed to create log dir: %w", err)
	}
	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, func() error { return err }, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := recipebook.NewFileScaleLogger(logFile)
	cleanup := func() error {
		return errors.Join(logger.Flush(), logFile.Close())
	}
	return logger, cleanup, nil
}
