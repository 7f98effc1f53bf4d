package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joeshaw/envdecode"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"recipebook"
	"recipebook/scaler"
	"recipebook/tools"
	"recipebook/tools/storage"
)

type Results struct {
	Recipe recipebook.ScaledRecipe `json:"recipe"`
	Text   string                  `json:"text"`
}

func main() {
	fn := func(ctx context.Context, req recipebook.ScaleRequest) (Results, error) {
		var scaleConfig recipebook.ScaleConfig
		if err := envdecode.Decode(&scaleConfig); err != nil {
			return Results{}, fmt.Errorf("failed to decode scale config: %w", err)
		}

		var storeConfig recipebook.StoreConfig
		if err := envdecode.Decode(&storeConfig); err != nil {
			return Results{}, fmt.Errorf("failed to decode store config: %w", err)
		}
		if storeConfig.S3Bucket == "" {
			return Results{}, fmt.Errorf("missing S3 config: RECIPES_S3_BUCKET must be set")
		}

		if req.Servings <= 0 {
			req.Servings = scaleConfig.TargetServings
		}

		awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRetryMaxAttempts(5))
		if err != nil {
			return Results{}, fmt.Errorf("failed to load AWS config: %w", err)
		}

		rs := storage.NewS3RecipeStore(s3.NewFromConfig(awsCfg), storeConfig.S3Bucket, storeConfig.S3Prefix)
		registry, err := tools.NewRegistry(rs, scaleConfig.OriginalServings)
		if err != nil {
			slog.Error("SETUP: Failed to create tool registry", "error", err)
			return Results{}, err
		}
		slog.Info("SETUP: S3 recipe store initialized", "bucket", storeConfig.S3Bucket, "prefix", storeConfig.S3Prefix)

		tracerProvider, _, otelShutdown, err := recipebook.InitOtel(ctx)
		if err != nil {
			slog.Error("SETUP: Failed to initialize OpenTelemetry", "error", err)
			return Results{}, err
		}
		defer func() {
			if err := otelShutdown(ctx); err != nil {
				slog.Error("SETUP: Failed to shutdown OpenTelemetry", "error", err)
			}
		}()

		ctx, span := tracerProvider.Tracer(recipebook.TracerNameLambda).Start(ctx, recipebook.TracerNameLambda, trace.WithAttributes(
			attribute.String("recipe", req.Recipe),
			attribute.Float64("servings.target", req.Servings),
			attribute.Bool("units.metric", req.Metric),
		))
		defer span.End()

		out, err := scaler.NewScaler(registry, scaleConfig.OriginalServings, recipebook.NewStdoutScaleLogger()).Run(ctx, req)
		if err != nil {
			slog.Error("RESULT: Error scaling recipe", "error", err, "recipe", req.Recipe)
			return Results{}, err
		}
		if !out.IsValid() {
			slog.Error("RESULT: Scaled recipe is incomplete", "recipe", req.Recipe)
			return Results{}, fmt.Errorf("scaled recipe %q is incomplete", req.Recipe)
		}

		return Results{Recipe: out, Text: tools.FormatRecipeText(out.Recipe())}, nil
	}

	lambda.Start(fn)
}
