package ingredient

import (
	"math"
	"strconv"
)

// fractionTolerance is how close a fractional part must be to a common
// cooking fraction to be printed as that fraction. The bound is inclusive;
// fractionSlack absorbs float error at the edge.
const (
	fractionTolerance = 0.01
	fractionSlack     = 1e-9
)

var commonFractions = []struct {
	value float64
	text  string
}{
	{1.0 / 8, "1/8"},
	{1.0 / 4, "1/4"},
	{1.0 / 3, "1/3"},
	{3.0 / 8, "3/8"},
	{1.0 / 2, "1/2"},
	{5.0 / 8, "5/8"},
	{2.0 / 3, "2/3"},
	{3.0 / 4, "3/4"},
	{7.0 / 8, "7/8"},
}

// FormatAmount renders a quantity the way a cook would write it: integers
// bare, common fractions as fractions (mixed when there is a whole part) and
// anything else rounded to two decimals.
func FormatAmount(v float64) string {
	if v == 0 {
		return "0"
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	if v > 0 {
		whole, frac := math.Modf(v)
		for _, f := range commonFractions {
			if math.Abs(frac-f.value) <= fractionTolerance+fractionSlack {
				if whole == 0 {
					return f.text
				}
				return strconv.FormatFloat(whole, 'f', -1, 64) + " " + f.text
			}
		}
	}

	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// Format renders p back to a single line. It never returns an empty string
// for a non-empty original.
func Format(p ParsedIngredient) string {
	v, ok := p.Quantity()
	if !ok {
		if p.Ingredient != "" {
			return p.Ingredient
		}
		return p.Original
	}

	amt := FormatAmount(v)

	if p.Unit == "" {
		if p.Ingredient == "" {
			return p.Original
		}
		return amt + " " + p.Ingredient
	}

	// Pluralize on what is printed so 0.999 shows as "1 cup".
	shown := v
	if amt == "1" {
		shown = 1
	}
	unit := p.Unit.Display(shown)

	if p.Ingredient == "" {
		return amt + " " + unit
	}
	return amt + " " + unit + " " + p.Ingredient
}
