package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lines    []string
		target   float64
		original float64
		metric   bool
		want     []string
	}{
		{
			name:     "scales up",
			lines:    []string{"2 cups flour", "3 eggs", "salt to taste"},
			target:   6,
			original: 4,
			want:     []string{"3 cups flour", "4 1/2 eggs", "salt to taste"},
		},
		{
			name:     "scales down",
			lines:    []string{"2 tbsp butter", "1 cup milk"},
			target:   2,
			original: 4,
			want:     []string{"1 tbsp butter", "1/2 cups milk"},
		},
		{
			name:     "unknown original yield leaves amounts",
			lines:    []string{"2 cups flour"},
			target:   10,
			original: 0,
			want:     []string{"2 cups flour"},
		},
		{
			name:     "to metric",
			lines:    []string{"1 cup milk", "2 lbs of bananas", "250 g butter"},
			target:   4,
			original: 4,
			metric:   true,
			want:     []string{"236.59 ml milk", "907.18 g bananas", "250 g butter"},
		},
		{
			name:     "to imperial",
			lines:    []string{"500 g flour", "1 1/2 cups (360 ml) heavy cream", "2 tbsp sugar"},
			target:   4,
			original: 4,
			want:     []string{"17.64 oz flour", "1.52 cups heavy cream", "2 tbsp sugar"},
		},
		{
			name:     "scale then convert",
			lines:    []string{"1 cup milk"},
			target:   8,
			original: 4,
			metric:   true,
			want:     []string{"473.18 ml milk"},
		},
		{
			name:     "count units scale but never convert",
			lines:    []string{"2 cloves garlic"},
			target:   8,
			original: 4,
			metric:   true,
			want:     []string{"4 cloves garlic"},
		},
		{
			name:     "empty input",
			lines:    []string{},
			target:   4,
			original: 4,
			want:     []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Process(tc.lines, tc.target, tc.original, tc.metric))
		})
	}
}

func TestNormalize_KeepsOriginal(t *testing.T) {
	p := Normalize("  2 cups flour ", 8, 4, true)
	assert.Equal(t, "2 cups flour", p.Original)
	assert.Equal(t, Milliliter, p.Unit)
	assert.Equal(t, RuleUnitName, p.Rule)
}

func TestParseServings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"Serves 6", 6},
		{"6 servings", 6},
		{"serves about 10-12", 10},
		{"", DefaultOriginalServings},
		{"a crowd", DefaultOriginalServings},
		{"0", DefaultOriginalServings},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseServings(tc.in))
		})
	}
}

func BenchmarkProcess(b *testing.B) {
	lines := []string{
		"1 1/2 cups (360 ml) heavy cream",
		"2 lbs of bananas",
		"2 cups flour",
		"3 eggs",
		"2 cloves garlic",
		"salt to taste",
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Process(lines, 6, 4, true)
	}
}
