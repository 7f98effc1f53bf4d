// Package ingredient parses free-text ingredient lines, rescales them by a
// serving ratio, converts between imperial and metric units and renders them
// back to text. Every function is total: unreadable input degrades to the
// line itself rather than an error.
package ingredient

// ParsedIngredient is the structured reading of one ingredient line. Values
// are treated as immutable; Scale and Convert return new values.
type ParsedIngredient struct {
	Original   string   `json:"original" yaml:"original"`
	Amount     *float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	Unit       Unit     `json:"unit,omitempty" yaml:"unit,omitempty"`
	Ingredient string   `json:"ingredient" yaml:"ingredient"`
	Rule       string   `json:"rule,omitempty" yaml:"rule,omitempty"`
}

// Quantity returns the amount and whether one is present.
func (p ParsedIngredient) Quantity() (float64, bool) {
	if p.Amount == nil {
		return 0, false
	}
	return *p.Amount, true
}

// HasAmount reports whether a leading quantity was recognized.
func (p ParsedIngredient) HasAmount() bool {
	return p.Amount != nil
}

// Measured reports whether p has both an amount and a unit. A unit without an
// amount carries no meaning.
func (p ParsedIngredient) Measured() bool {
	return p.Amount != nil && p.Unit != ""
}

func (p ParsedIngredient) withAmount(v float64) ParsedIngredient {
	p.Amount = &v
	return p
}

func amount(v float64) *float64 { return &v }
