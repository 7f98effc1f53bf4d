package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pancakesText = `Recipe: Pancakes
Category: Breakfast & Brunch
Servings: 4

Ingredients:
- 2 cups flour
- 2 eggs
- 1 1/2 cups milk

Instructions:
- Whisk everything together.
- Cook on a hot griddle.
`

func TestFormatRecipeText_RoundTrip(t *testing.T) {
	r := ParseRecipeText(pancakesText)

	assert.Equal(t, "Pancakes", r.Name)
	assert.Equal(t, "Breakfast & Brunch", r.Category)
	assert.Equal(t, 4.0, r.Servings)
	assert.Equal(t, []string{"2 cups flour", "2 eggs", "1 1/2 cups milk"}, r.Ingredients)
	assert.Equal(t, []string{"Whisk everything together.", "Cook on a hot griddle."}, r.Instructions)

	assert.Equal(t, pancakesText, FormatRecipeText(r))
}

func TestParseRecipeText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Recipe
	}{
		{
			name: "minimal layout without metadata",
			text: "Recipe: Toast\n\nIngredients:\n- 2 slices bread\n\nInstructions:\n- Toast it.\n",
			want: Recipe{Name: "Toast", Ingredients: []string{"2 slices bread"}, Instructions: []string{"Toast it."}},
		},
		{
			name: "items right after the name are ingredients",
			text: "Recipe: Tea\n- 1 tea bag\nInstructions:\n- Steep.",
			want: Recipe{Name: "Tea", Ingredients: []string{"1 tea bag"}, Instructions: []string{"Steep."}},
		},
		{
			name: "windows line endings and stray lines",
			text: "Recipe: Soup\r\nsome note\r\nIngredients:\r\n- 1 cup stock\r\n",
			want: Recipe{Name: "Soup", Ingredients: []string{"1 cup stock"}, Instructions: []string{}},
		},
		{
			name: "bad servings are ignored",
			text: "Recipe: Stew\nServings: lots\n",
			want: Recipe{Name: "Stew", Ingredients: []string{}, Instructions: []string{}},
		},
		{
			name: "empty",
			text: "",
			want: Recipe{Ingredients: []string{}, Instructions: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRecipeText(tt.text))
		})
	}
}

func TestDecodeRecipe(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		data    string
		want    Recipe
		wantErr string
	}{
		{
			name: "text",
			key:  "pancakes/pancakes.txt",
			data: "Recipe: Pancakes\n\nIngredients:\n- 2 eggs\n",
			want: Recipe{Name: "Pancakes", Ingredients: []string{"2 eggs"}, Instructions: []string{}},
		},
		{
			name: "json",
			key:  "chili/chili.json",
			data: `{"name":"Chili","servings":6,"ingredients":["2 lbs beef"],"instructions":["Simmer."]}`,
			want: Recipe{Name: "Chili", Servings: 6, Ingredients: []string{"2 lbs beef"}, Instructions: []string{"Simmer."}},
		},
		{
			name: "yaml",
			key:  "salad/salad.YAML",
			data: "name: Salad\ncategory: Salads\nservings: 2\ningredients:\n  - 1 head lettuce\n",
			want: Recipe{Name: "Salad", Category: "Salads", Servings: 2, Ingredients: []string{"1 head lettuce"}, Instructions: []string{}},
		},
		{
			name:    "bad json",
			key:     "x.json",
			data:    "{",
			wantErr: "unexpected end of JSON input",
		},
		{
			name:    "unknown extension",
			key:     "x.docx",
			data:    "",
			wantErr: `unsupported recipe format ".docx"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeRecipe(tt.key, []byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecipeKey(t *testing.T) {
	assert.Equal(t, "pancakes/pancakes.txt", RecipeKey("pancakes"))
	assert.Equal(t, "pancakes/pancakes.txt", RecipeKey(" pancakes/ "))
	assert.Equal(t, "chili/chili.json", RecipeKey("chili/chili.json"))
	assert.Equal(t, "soup.yaml", RecipeKey("soup.yaml"))
}

func TestParseServings_YieldPhrases(t *testing.T) {
	tests := []struct {
		line string
		want float64
	}{
		{"Servings: 6", 6},
		{"Servings: 1.5", 1.5},
		{"Servings: Serves 6", 6},
		{"Servings: 6 servings", 6},
		{"Servings: makes about 10-12", 10},
		{"Servings: lots", 0},
		{"Servings: -2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			r := ParseRecipeText("Recipe: Stew\n" + tt.line + "\n")
			assert.Equal(t, tt.want, r.Servings)
		})
	}
}

func TestDecodeRecipe_NormalizesCategory(t *testing.T) {
	tests := []struct {
		name string
		key  string
		data string
		want string
	}{
		{"text lower case", "soup/soup.txt", "Recipe: Soup\nCategory: soups & stews\n", "Soups & Stews"},
		{"json unknown", "x/x.json", `{"name":"X","category":"Midnight Snacks"}`, "Other"},
		{"yaml padded", "y/y.yaml", "name: Y\ncategory: ' desserts '\n", "Desserts"},
		{"missing stays empty", "z/z.txt", "Recipe: Z\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := DecodeRecipe(tt.key, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Category)
		})
	}

	r, err := DecodeRecipe("stew/stew.txt", []byte("Recipe: Stew\nServings: Serves 6\n"))
	require.NoError(t, err)
	assert.Equal(t, 6.0, r.Servings)
}

func TestCanonicalCategory(t *testing.T) {
	assert.Equal(t, "Desserts", CanonicalCategory("desserts"))
	assert.Equal(t, "Soups & Stews", CanonicalCategory(" soups & stews "))
	assert.Equal(t, "Other", CanonicalCategory("Midnight Snacks"))
	assert.Equal(t, "Other", CanonicalCategory(""))
}
