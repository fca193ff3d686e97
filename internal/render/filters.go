package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	pongo2 "github.com/flosch/pongo2/v6"

	"github.com/cookworks/cookreport/internal/quantity"
)

// Filters are registered once, globally. pongo2 keeps a process-wide
// filter table, so registration happens at package init and duplicate
// registration is impossible.
func init() {
	register := func(name string, fn pongo2.FilterFunction) {
		if err := pongo2.RegisterFilter(name, fn); err != nil {
			panic(err)
		}
	}

	register("quantity", filterQuantity)
	register("format_price", filterFormatPrice)
	register("numeric", filterNumeric)

	register("camelize", stringFilter(camelize))
	register("underscore", stringFilter(underscore))
	register("dasherize", stringFilter(dasherize))
	register("humanize", stringFilter(humanize))
	register("titleize", stringFilter(titleize))
	register("upcase_first", stringFilter(upcaseFirst))

	register("number_to_currency", filterNumberToCurrency)
	register("number_to_human", filterNumberToHuman)
	register("number_to_human_size", filterNumberToHumanSize)
	register("number_to_percentage", filterNumberToPercentage)
	register("number_with_delimiter", filterNumberWithDelimiter)
	register("number_with_precision", filterNumberWithPrecision)
}

// filterQuantity renders "<quantity> <unit>". The parameter is the unit;
// without one only the quantity is formatted.
func filterQuantity(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	unit := ""
	if param != nil && !param.IsNil() {
		unit = param.String()
	}
	return pongo2.AsValue(quantity.Format(in.Interface(), unit)), nil
}

// filterFormatPrice renders a number with fixed decimals (default 2).
func filterFormatPrice(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	value, err := toFloat(in)
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:format_price", OrigError: err}
	}
	decimals := 2
	if param != nil && !param.IsNil() {
		decimals = param.Integer()
	}
	return pongo2.AsValue(quantity.FormatPrice(value, decimals)), nil
}

// filterNumeric extracts the leading numeric part of a quantity string.
// Fractions like "1/4" are evaluated to their decimal value. The result
// is a decimal display string ("250.0", "0.5") so it renders cleanly.
func filterNumeric(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	s := in.String()

	end := 0
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != '/' {
			break
		}
		end += len(string(r))
	}
	numeric := s[:end]

	if num, denom, ok := strings.Cut(numeric, "/"); ok {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(denom, 64)
		if errN == nil && errD == nil && d != 0 {
			return pongo2.AsValue(formatDecimal(n / d)), nil
		}
	} else if n, err := strconv.ParseFloat(numeric, 64); err == nil {
		return pongo2.AsValue(formatDecimal(n)), nil
	}

	return nil, &pongo2.Error{
		Sender:    "filter:numeric",
		OrigError: fmt.Errorf("could not extract numeric value from %q", s),
	}
}

func stringFilter(fn func(string) string) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(fn(in.String())), nil
	}
}

func camelize(s string) string {
	var b strings.Builder
	capitalizeNext := true
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ':
			capitalizeNext = true
		case capitalizeNext:
			b.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func underscore(s string) string {
	return lowerDelimited(s, '_')
}

func dasherize(s string) string {
	return lowerDelimited(s, '-')
}

// lowerDelimited lowercases camel-case words, joining them with sep.
// Existing separators and spaces are replaced with sep.
func lowerDelimited(s string, sep rune) string {
	var b strings.Builder
	prevUpper := false
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && !prevUpper {
				b.WriteRune(sep)
			}
			b.WriteRune(unicode.ToLower(r))
			prevUpper = true
		case r == '-' || r == '_' || r == ' ':
			b.WriteRune(sep)
			prevUpper = false
		default:
			b.WriteRune(r)
			prevUpper = false
		}
	}
	return b.String()
}

func humanize(s string) string {
	var b strings.Builder
	first := true
	for _, r := range s {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
		case first:
			b.WriteRune(unicode.ToUpper(r))
			first = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func titleize(s string) string {
	var b strings.Builder
	capitalizeNext := true
	for _, r := range s {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			capitalizeNext = true
		case r == ' ':
			b.WriteRune(r)
			capitalizeNext = true
		case capitalizeNext:
			b.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func upcaseFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
