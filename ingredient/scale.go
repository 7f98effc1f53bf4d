package ingredient

// Scale multiplies the amount of p by factor. Without an amount p is returned
// unchanged. No rounding happens here; Format rounds on output.
func Scale(p ParsedIngredient, factor float64) ParsedIngredient {
	v, ok := p.Quantity()
	if !ok {
		return p
	}
	return p.withAmount(v * factor)
}

// ServingRatio is targetServings/originalServings, or 1 when the original
// yield is unknown.
func ServingRatio(targetServings, originalServings float64) float64 {
	if originalServings <= 0 {
		return 1
	}
	return targetServings / originalServings
}
