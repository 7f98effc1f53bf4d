package tools

import (
	"fmt"
	"sort"

	"recipebook/tools/storage"
)

// Registry maps tool names to implementations
type Registry map[string]Tool

// NewRegistry creates a tool registry over the given recipe store.
// originalServings is the yield assumed for recipes that do not state one.
func NewRegistry(store storage.RecipeStore, originalServings float64) (*Registry, error) {
	if store == nil {
		return nil, fmt.Errorf("recipe store is required")
	}

	recipeGet := NewRecipeGet(store)
	scale := NewIngredientsScale(originalServings)

	registry := Registry(map[string]Tool{
		recipeGet.Name(): recipeGet,
		scale.Name():     scale,
	})
	return &registry, nil
}

// GetTools returns all tools in the registry sorted by name
func (r *Registry) GetTools() []Tool {
	tools := make([]Tool, 0, len(*r))
	for _, tool := range *r {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// GetTool retrieves a tool by name from the registry
func (r Registry) GetTool(name string) (Tool, error) {
	tool, exists := r[name]
	if !exists {
		return nil, fmt.Errorf("tool %q not found in registry", name)
	}
	return tool, nil
}
