package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"recipebook"
	"recipebook/ingredient"
)

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client posts to a Slack incoming webhook.
type Client struct {
	webhookURL string
	httpClient doer
}

func NewClient(webhookURL string, httpClient doer) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: httpClient,
	}
}

func (c *Client) PostMessage(ctx context.Context, channel string, message string) error {
	payload, err := json.Marshal(map[string]any{
		"channel": channel,
		"text":    message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to post message: %s", resp.Status)
	}

	return nil
}

// PostRecipe shares a scaled recipe as a formatted message.
func (c *Client) PostRecipe(ctx context.Context, channel string, r recipebook.ScaledRecipe) error {
	if err := c.PostMessage(ctx, channel, RecipeMessage(r)); err != nil {
		return fmt.Errorf("failed to post recipe %q: %w", r.Name, err)
	}
	return nil
}

// RecipeMessage renders r in Slack mrkdwn.
func RecipeMessage(r recipebook.ScaledRecipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s*", r.Name)
	if r.Category != "" {
		fmt.Fprintf(&b, " _(%s)_", r.Category)
	}
	b.WriteString("\n")

	system := ingredient.Imperial
	if r.Metric {
		system = ingredient.Metric
	}
	fmt.Fprintf(&b, "Serves %s (scaled from %s, %s units)\n",
		ingredient.FormatAmount(r.Servings), ingredient.FormatAmount(r.OriginalServings), system)

	b.WriteString("\n*Ingredients*\n")
	for _, line := range r.Ingredients {
		fmt.Fprintf(&b, "• %s\n", line)
	}

	if len(r.Instructions) > 0 {
		b.WriteString("\n*Instructions*\n")
		for i, step := range r.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}

	return b.String()
}
