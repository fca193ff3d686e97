// Package quantity formats ingredient quantities and prices for display.
package quantity

import (
	"math"
	"strconv"

	"github.com/gertd/go-pluralize"
)

var plural = pluralize.NewClient()

// countableUnits lists units that read as countable nouns and take a plural
// form. Everything else (measurement abbreviations like "ml" or "tbsp",
// descriptors like "large") is left untouched.
var countableUnits = map[string]struct{}{
	"bunch":   {},
	"can":     {},
	"clove":   {},
	"cup":     {},
	"dash":    {},
	"drop":    {},
	"egg":     {},
	"handful": {},
	"head":    {},
	"knob":    {},
	"leaf":    {},
	"loaf":    {},
	"piece":   {},
	"pinch":   {},
	"slice":   {},
	"sprig":   {},
	"stalk":   {},
	"stick":   {},
}

// Format renders a quantity and unit as a single display string with one
// space between them. The value may be nil (no quantity), a numeric type,
// or a string for textual quantities like "some".
func Format(value any, unit string) string {
	switch v := value.(type) {
	case nil:
		return unit
	case string:
		// Numeric display strings ("1.5") still agree with the unit.
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return join(v, pluralizeUnit(unit, f))
		}
		return join(v, unit)
	case int:
		return join(strconv.Itoa(v), pluralizeUnit(unit, float64(v)))
	case int64:
		return join(strconv.FormatInt(v, 10), pluralizeUnit(unit, float64(v)))
	case float64:
		return join(FormatNumber(v), pluralizeUnit(unit, v))
	default:
		return join("", unit)
	}
}

// FormatNumber renders a numeric quantity: integral values without a
// decimal point, everything else with up to three decimals, trailing
// zeros trimmed.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return strconv.FormatInt(int64(v), 10)
	}
	rounded := math.Round(v*1000) / 1000
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// FormatPrice renders a monetary value with a fixed number of decimals and
// no currency symbol.
func FormatPrice(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(value, 'f', decimals, 64)
}

// pluralizeUnit inflects a countable unit to agree with the quantity.
func pluralizeUnit(unit string, qty float64) string {
	if unit == "" {
		return ""
	}
	if _, ok := countableUnits[unit]; !ok {
		return unit
	}
	if qty == 1 {
		return plural.Singular(unit)
	}
	return plural.Plural(unit)
}

func join(qty, unit string) string {
	if qty == "" {
		return unit
	}
	if unit == "" {
		return qty
	}
	return qty + " " + unit
}
