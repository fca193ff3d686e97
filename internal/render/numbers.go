package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	pongo2 "github.com/flosch/pongo2/v6"
)

// Rails-style number formatting helpers. The engine has no keyword
// arguments, so optional settings are positional: the order below matches
// the argument order documented per function.

// registerNumberFunctions installs the number_* family as context
// functions. Each is also available as a filter taking the first optional
// setting as its parameter.
func registerNumberFunctions(ctx pongo2.Context) {
	ctx["number_to_currency"] = fnNumberToCurrency
	ctx["number_to_human"] = fnNumberToHuman
	ctx["number_to_human_size"] = fnNumberToHumanSize
	ctx["number_to_percentage"] = fnNumberToPercentage
	ctx["number_with_delimiter"] = fnNumberWithDelimiter
	ctx["number_with_precision"] = fnNumberWithPrecision
}

// number_to_currency(value, precision=2, unit="$")
func fnNumberToCurrency(value *pongo2.Value, args ...*pongo2.Value) (string, error) {
	number, err := toFloat(value)
	if err != nil {
		return "", err
	}
	precision := intArg(args, 0, 2)
	unit := stringArg(args, 1, "$")
	return numberToCurrency(number, precision, unit), nil
}

// number_to_human(value, precision=3)
func fnNumberToHuman(value *pongo2.Value, args ...*pongo2.Value) (string, error) {
	number, err := toFloat(value)
	if err != nil {
		return "", err
	}
	return numberToHuman(number, intArg(args, 0, 3)), nil
}

// number_to_human_size(value, precision=3)
func fnNumberToHumanSize(value *pongo2.Value, args ...*pongo2.Value) (string, error) {
	number, err := toFloat(value)
	if err != nil {
		return "", err
	}
	return numberToHumanSize(number, intArg(args, 0, 3))
}

// number_to_percentage(value, precision=3)
func fnNumberToPercentage(value *pongo2.Value, args ...*pongo2.Value) (string, error) {
	number, err := toFloat(value)
	if err != nil {
		return "", err
	}
	return numberToPercentage(number, intArg(args, 0, 3)), nil
}

// number_with_delimiter(value, delimiter=",")
func fnNumberWithDelimiter(value *pongo2.Value, args ...*pongo2.Value) (string, error) {
	number, err := toFloat(value)
	if err != nil {
		return "", err
	}
	return numberWithDelimiter(number, stringArg(args, 0, ",")), nil
}

// number_with_precision(value, precision=3, strip_insignificant_zeros=false)
func fnNumberWithPrecision(value *pongo2.Value, args ...*pongo2.Value) (string, error) {
	number, err := toFloat(value)
	if err != nil {
		return "", err
	}
	precision := intArg(args, 0, 3)
	strip := false
	if len(args) > 1 && !args[1].IsNil() {
		strip = args[1].Bool()
	}
	return numberWithPrecision(number, precision, strip), nil
}

func numberToCurrency(number float64, precision int, unit string) string {
	formatted := formatNumber(math.Abs(number), precision, ",", ".")
	if number < 0 {
		return "-" + unit + formatted
	}
	return unit + formatted
}

func numberToHuman(number float64, precision int) string {
	abs := math.Abs(number)

	scales := []struct {
		limit float64
		div   float64
		word  string
	}{
		{1e3, 1, ""},
		{1e6, 1e3, " Thousand"},
		{1e9, 1e6, " Million"},
		{1e12, 1e9, " Billion"},
		{1e15, 1e12, " Trillion"},
		{math.Inf(1), 1e15, " Quadrillion"},
	}

	var formatted, word string
	for _, s := range scales {
		if abs < s.limit {
			formatted = formatNumber(abs/s.div, precision, "", ".")
			word = s.word
			break
		}
	}

	sign := ""
	if number < 0 {
		sign = "-"
	}
	return sign + formatted + word
}

func numberToHumanSize(number float64, precision int) (string, error) {
	if number < 0 {
		return "", fmt.Errorf("size cannot be negative")
	}

	units := []string{" Bytes", " KB", " MB", " GB", " TB", " PB"}
	div := 1.0
	unit := units[0]
	for i := 1; i < len(units) && number >= div*1024; i++ {
		div *= 1024
		unit = units[i]
	}

	formatted := formatNumber(number/div, precision, "", ".")
	formatted = strings.TrimSuffix(formatted, ".000")
	return formatted + unit, nil
}

func numberToPercentage(number float64, precision int) string {
	return formatNumber(number, precision, "", ".") + "%"
}

func numberWithDelimiter(number float64, delimiter string) string {
	precision := 0
	if number != math.Trunc(number) {
		s := strconv.FormatFloat(number, 'f', -1, 64)
		if dot := strings.IndexByte(s, '.'); dot >= 0 {
			precision = len(s) - dot - 1
		}
	}
	return formatNumber(number, precision, delimiter, ".")
}

func numberWithPrecision(number float64, precision int, stripInsignificantZeros bool) string {
	result := formatNumber(number, precision, "", ".")
	if stripInsignificantZeros && strings.Contains(result, ".") {
		result = strings.TrimRight(result, "0")
		result = strings.TrimSuffix(result, ".")
	}
	return result
}

// formatNumber renders a number at fixed precision, grouping the integer
// digits in threes with the delimiter. The separator sits between integer
// and decimal part.
func formatNumber(number float64, precision int, delimiter, separator string) string {
	if precision < 0 {
		precision = 0
	}

	negative := number < 0
	formatted := strconv.FormatFloat(math.Abs(number), 'f', precision, 64)
	intPart, decPart, hasDec := strings.Cut(formatted, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	n := len(intPart)
	for i := 0; i < n; i++ {
		b.WriteByte(intPart[i])
		remaining := n - i - 1
		if remaining > 0 && remaining%3 == 0 && delimiter != "" {
			b.WriteString(delimiter)
		}
	}
	if hasDec && precision > 0 {
		b.WriteString(separator)
		b.WriteString(decPart)
	}
	return b.String()
}

// toFloat coerces a template value to float64, accepting numbers and
// numeric strings.
func toFloat(v *pongo2.Value) (float64, error) {
	if v.IsInteger() {
		return float64(v.Integer()), nil
	}
	if v.IsFloat() {
		return v.Float(), nil
	}
	s := strings.TrimSpace(v.String())
	number, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %q", s)
	}
	return number, nil
}

// Filter forms of the number_* functions. The single filter parameter is
// the first optional setting of the matching function.

func filterNumberToCurrency(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return numberFilter("number_to_currency", in, func(number float64) (string, error) {
		return numberToCurrency(number, filterInt(param, 2), "$"), nil
	})
}

func filterNumberToHuman(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return numberFilter("number_to_human", in, func(number float64) (string, error) {
		return numberToHuman(number, filterInt(param, 3)), nil
	})
}

func filterNumberToHumanSize(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return numberFilter("number_to_human_size", in, func(number float64) (string, error) {
		return numberToHumanSize(number, filterInt(param, 3))
	})
}

func filterNumberToPercentage(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return numberFilter("number_to_percentage", in, func(number float64) (string, error) {
		return numberToPercentage(number, filterInt(param, 3)), nil
	})
}

func filterNumberWithDelimiter(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return numberFilter("number_with_delimiter", in, func(number float64) (string, error) {
		delimiter := ","
		if param != nil && !param.IsNil() {
			delimiter = param.String()
		}
		return numberWithDelimiter(number, delimiter), nil
	})
}

func filterNumberWithPrecision(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return numberFilter("number_with_precision", in, func(number float64) (string, error) {
		return numberWithPrecision(number, filterInt(param, 3), false), nil
	})
}

func numberFilter(name string, in *pongo2.Value, fn func(float64) (string, error)) (*pongo2.Value, *pongo2.Error) {
	number, err := toFloat(in)
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
	}
	out, err := fn(number)
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
	}
	return pongo2.AsValue(out), nil
}

func filterInt(param *pongo2.Value, fallback int) int {
	if param == nil || param.IsNil() {
		return fallback
	}
	return param.Integer()
}

func intArg(args []*pongo2.Value, i, fallback int) int {
	if len(args) <= i || args[i].IsNil() {
		return fallback
	}
	return args[i].Integer()
}

func stringArg(args []*pongo2.Value, i int, fallback string) string {
	if len(args) <= i || args[i].IsNil() {
		return fallback
	}
	return args[i].String()
}
