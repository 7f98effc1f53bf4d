package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

// Tool is a named operation with JSON-schema'd input and output. Inputs and
// outputs are plain decoded-JSON maps so tools can be driven from any caller.
type Tool interface {
	Name() string
	Title() string
	Description() string
	InputSchema() *jsonschema.Schema
	OutputSchema() *jsonschema.Schema
	Run(ctx context.Context, input map[string]any) (output map[string]any, err error)
}

type lookup interface {
	GetTool(name string) (Tool, error)
}

// Call is one invocation of a tool by name.
type Call struct {
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

// Run resolves the tool through tp and runs it with the call's input.
func (c Call) Run(ctx context.Context, tp lookup) (map[string]any, error) {
	tool, err := tp.GetTool(c.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get tool %q: %w", c.Name, err)
	}
	out, err := tool.Run(ctx, c.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to run tool %q: %w", c.Name, err)
	}
	return out, nil
}
