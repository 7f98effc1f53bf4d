package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	t.Parallel()

	t.Run("multiplies the amount", func(t *testing.T) {
		p := ParsedIngredient{Original: "2 cups flour", Amount: amount(2), Unit: Cup, Ingredient: "flour"}
		got := Scale(p, 1.5)

		v, ok := got.Quantity()
		require.True(t, ok)
		assert.InDelta(t, 3.0, v, 1e-9)
		assert.Equal(t, Cup, got.Unit)
		assert.Equal(t, "flour", got.Ingredient)
		assert.Equal(t, "3 cups flour", Format(got))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		p := Parse("2 cups flour")
		_ = Scale(p, 10)
		v, _ := p.Quantity()
		assert.Equal(t, 2.0, v)
	})

	t.Run("ratio one is identity", func(t *testing.T) {
		for _, line := range []string{"2 cups flour", "3 eggs", "1 1/2 cups (360 ml) heavy cream", "salt"} {
			p := Parse(line)
			assert.Equal(t, p, Scale(p, 1), line)
		}
	})

	t.Run("no amount is a no-op", func(t *testing.T) {
		p := Parse("salt to taste")
		for _, k := range []float64{0, 0.5, 1, 3, -2} {
			assert.Equal(t, p, Scale(p, k))
		}
	})

	t.Run("linear", func(t *testing.T) {
		p := Parse("1 1/2 cups sugar")
		for _, f := range [][2]float64{{2, 3}, {0.5, 0.25}, {1.0 / 3, 6}, {7, 0.1}} {
			twice, _ := Scale(Scale(p, f[0]), f[1]).Quantity()
			once, _ := Scale(p, f[0]*f[1]).Quantity()
			assert.InDelta(t, once, twice, 1e-9)
		}
	})
}

func TestServingRatio(t *testing.T) {
	assert.Equal(t, 1.5, ServingRatio(6, 4))
	assert.Equal(t, 0.5, ServingRatio(2, 4))
	assert.Equal(t, 1.0, ServingRatio(6, 0))
	assert.Equal(t, 1.0, ServingRatio(6, -1))
}
