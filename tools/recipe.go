package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"recipebook/ingredient"
)

// Categories are the shelves a recipe can be filed under.
var Categories = []string{
	"Appetizers",
	"Soups & Stews",
	"Salads",
	"Main Dishes",
	"Pasta & Noodles",
	"Bread & Baked Goods",
	"Desserts",
	"Breakfast & Brunch",
	"Beverages",
	"Sauces & Condiments",
	"Snacks",
	"Side Dishes",
	"Other",
}

type Recipe struct {
	Name         string   `json:"name" yaml:"name"`
	Category     string   `json:"category,omitempty" yaml:"category,omitempty"`
	Servings     float64  `json:"servings,omitempty" yaml:"servings,omitempty"`
	Ingredients  []string `json:"ingredients" yaml:"ingredients"`
	Instructions []string `json:"instructions" yaml:"instructions"`
	Images       []string `json:"images,omitempty" yaml:"images,omitempty"`
}

// CanonicalCategory matches c case-insensitively against Categories and
// returns "Other" for anything unknown or empty.
func CanonicalCategory(c string) string {
	for _, known := range Categories {
		if strings.EqualFold(strings.TrimSpace(c), known) {
			return known
		}
	}
	return "Other"
}

// RecipeKey maps a recipe name to its storage key. Names that already carry
// an extension are used as-is; bare names live at <name>/<name>.txt.
func RecipeKey(name string) string {
	name = strings.Trim(strings.TrimSpace(name), "/")
	if path.Ext(name) != "" {
		return name
	}
	return name + "/" + name + ".txt"
}

// DecodeRecipe picks a codec from the key's extension.
func DecodeRecipe(key string, data []byte) (Recipe, error) {
	var r Recipe
	switch strings.ToLower(path.Ext(key)) {
	case ".json":
		if err := json.Unmarshal(data, &r); err != nil {
			return Recipe{}, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &r); err != nil {
			return Recipe{}, err
		}
	case ".txt", "":
		r = ParseRecipeText(string(data))
	default:
		return Recipe{}, fmt.Errorf("unsupported recipe format %q", path.Ext(key))
	}

	if r.Category != "" {
		r.Category = CanonicalCategory(r.Category)
	}
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Instructions == nil {
		r.Instructions = []string{}
	}
	return r, nil
}

// FormatRecipeText renders r in the plain-text layout recipes are stored in.
func FormatRecipeText(r Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Recipe: %s\n", r.Name)
	if r.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", r.Category)
	}
	if r.Servings > 0 {
		fmt.Fprintf(&b, "Servings: %s\n", strconv.FormatFloat(r.Servings, 'f', -1, 64))
	}
	b.WriteString("\nIngredients:\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "- %s\n", ing)
	}
	b.WriteString("\nInstructions:\n")
	for _, step := range r.Instructions {
		fmt.Fprintf(&b, "- %s\n", step)
	}

	return b.String()
}

// ParseRecipeText reads the layout written by FormatRecipeText. Unknown lines
// are ignored.
func ParseRecipeText(text string) Recipe {
	r := Recipe{Ingredients: []string{}, Instructions: []string{}}

	section := ""
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimRight(line, " \t")
		switch {
		case strings.HasPrefix(line, "Recipe: "):
			r.Name = strings.TrimSpace(strings.TrimPrefix(line, "Recipe: "))
			section = "ingredients"
		case strings.HasPrefix(line, "Category: "):
			r.Category = strings.TrimSpace(strings.TrimPrefix(line, "Category: "))
		case strings.HasPrefix(line, "Servings: "):
			r.Servings = parseServings(strings.TrimSpace(strings.TrimPrefix(line, "Servings: ")))
		case line == "Ingredients:":
			section = "ingredients"
		case line == "Instructions:":
			section = "instructions"
		case strings.HasPrefix(line, "- "):
			item := strings.TrimSpace(line[2:])
			switch section {
			case "ingredients":
				r.Ingredients = append(r.Ingredients, item)
			case "instructions":
				r.Instructions = append(r.Instructions, item)
			}
		}
	}

	return r
}

// parseServings accepts a plain number or a yield phrase such as "Serves 6".
// Text without any digit leaves the yield unknown.
func parseServings(v string) float64 {
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		if n > 0 && !math.IsInf(n, 0) {
			return n
		}
		return 0
	}
	if !strings.ContainsAny(v, "0123456789") {
		return 0
	}
	return float64(ingredient.ParseServings(v))
}
