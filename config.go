package recipebook

// ScaleConfig holds the defaults applied when a request leaves them unset.
// A zero TargetServings keeps each recipe's own yield.
type ScaleConfig struct {
	OriginalServings float64 `env:"ORIGINAL_SERVINGS,default=4"`
	TargetServings   float64 `env:"TARGET_SERVINGS"`
	UseMetric        bool    `env:"USE_METRIC,default=false"`
}

type StoreConfig struct {
	RecipesDir string `env:"RECIPES_DIR,default=artifacts/recipes"`
	S3Bucket   string `env:"RECIPES_S3_BUCKET"`
	S3Prefix   string `env:"RECIPES_S3_PREFIX,default=recipes/"`
}

type NotifyConfig struct {
	SlackWebhookURL string `env:"SLACK_WEBHOOK_URL"`
	SlackChannel    string `env:"SLACK_CHANNEL,default=#recipes"`
	DebugDump       bool   `env:"DEBUG_DUMP,default=false"`
}
