package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  Unit
		ok    bool
	}{
		{"tablespoon", Tablespoon, true},
		{"Tablespoons", Tablespoon, true},
		{"tbsp.", Tablespoon, true},
		{"TBSP", Tablespoon, true},
		{"tsp.", Teaspoon, true},
		{"cups", Cup, true},
		{"c", Cup, true},
		{"fl oz", FluidOunce, true},
		{"fluid  ounces", FluidOunce, true},
		{"lbs.", Pound, true},
		{"pounds", Pound, true},
		{"oz.", Ounce, true},
		{"grams", Gram, true},
		{"Kilograms", Kilogram, true},
		{"mL", Milliliter, true},
		{"litres", Liter, true},
		{"inches", Inch, true},
		{"in.", Inch, true},
		{"feet", Foot, true},
		{"ft", Foot, true},
		{"centimeters", Centimeter, true},
		{"pinches", Pinch, true},
		{"dashes", Dash, true},
		{"bunches", Bunch, true},
		{"sprig", Sprig, true},
		{"widget", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			t.Parallel()
			got, ok := LookupUnit(tc.token)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnit_System(t *testing.T) {
	assert.Equal(t, Imperial, Cup.System())
	assert.Equal(t, Imperial, Foot.System())
	assert.Equal(t, Metric, Milliliter.System())
	assert.Equal(t, Metric, Centimeter.System())
	assert.Equal(t, Count, Clove.System())
	assert.Equal(t, NoSystem, Unit("smidgen").System())
	assert.Equal(t, "metric", Metric.String())
	assert.True(t, Gram.Known())
	assert.False(t, Unit("smidgen").Known())
}

func TestUnit_Display(t *testing.T) {
	t.Parallel()

	tests := []struct {
		unit   Unit
		amount float64
		want   string
	}{
		{Cup, 1, "cup"},
		{Cup, 2, "cups"},
		{Cup, 0.5, "cups"},
		{Pound, 3, "lbs"},
		{Clove, 2, "cloves"},
		{Pinch, 2, "pinches"},
		{Foot, 2, "feet"},
		{Inch, 2, "inches"},
		{Gram, 200, "g"},
		{Kilogram, 2, "kg"},
		{Milliliter, 250, "ml"},
		{Tablespoon, 2, "tbsp"},
		{Teaspoon, 3, "tsp"},
		{FluidOunce, 4, "fl oz"},
		{Unit("smidgen"), 2, "smidgen"},
	}

	for _, tc := range tests {
		t.Run(string(tc.unit), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.unit.Display(tc.amount))
		})
	}
}

func TestUnit_ConversionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		unit   Unit
		sys    System
		to     Unit
		factor float64
		ok     bool
	}{
		{Teaspoon, Metric, Milliliter, 4.92892, true},
		{Tablespoon, Metric, Milliliter, 14.7868, true},
		{Cup, Metric, Milliliter, 236.588, true},
		{FluidOunce, Metric, Milliliter, 29.5735, true},
		{Pint, Metric, Milliliter, 473.176, true},
		{Quart, Metric, Milliliter, 946.353, true},
		{Gallon, Metric, Liter, 3.78541, true},
		{Ounce, Metric, Gram, 28.3495, true},
		{Pound, Metric, Gram, 453.592, true},
		{Inch, Metric, Centimeter, 2.54, true},
		{Foot, Metric, Centimeter, 30.48, true},
		{Milliliter, Imperial, Cup, 0.00422675, true},
		{Liter, Imperial, Cup, 4.22675, true},
		{Gram, Imperial, Ounce, 0.035274, true},
		{Kilogram, Imperial, Pound, 2.20462, true},
		{Centimeter, Imperial, Inch, 0.393701, true},
		{Cup, Imperial, "", 0, false},
		{Gram, Metric, "", 0, false},
		{Clove, Metric, "", 0, false},
		{Clove, Imperial, "", 0, false},
		{Unit("smidgen"), Metric, "", 0, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.unit)+"->"+tc.sys.String(), func(t *testing.T) {
			t.Parallel()
			to, factor, ok := tc.unit.ConversionTo(tc.sys)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.to, to)
			assert.Equal(t, tc.factor, factor)
		})
	}
}

func TestUnitTable_AliasesResolveToThemselves(t *testing.T) {
	for u, info := range units {
		got, ok := LookupUnit(string(u))
		assert.True(t, ok, "canonical %q must be its own alias", u)
		assert.Equal(t, u, got)
		for _, a := range info.aliases {
			got, ok := LookupUnit(a)
			assert.True(t, ok, a)
			assert.Equal(t, u, got, a)
		}
	}
}
