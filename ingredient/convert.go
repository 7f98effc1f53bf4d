package ingredient

// Convert moves p into the metric system when toMetric is set and into the
// imperial system otherwise. Values without an amount or unit, units already
// in the target system and count units come back unchanged.
func Convert(p ParsedIngredient, toMetric bool) ParsedIngredient {
	v, ok := p.Quantity()
	if !ok || p.Unit == "" {
		return p
	}

	target := Imperial
	if toMetric {
		target = Metric
	}

	to, factor, ok := p.Unit.ConversionTo(target)
	if !ok {
		return p
	}

	out := p.withAmount(v * factor)
	out.Unit = to
	return out
}
