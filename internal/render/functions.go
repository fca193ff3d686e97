package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cookworks/cookreport/internal/pantry"
	"github.com/cookworks/cookreport/internal/quantity"
	"github.com/cookworks/cookreport/pkg/datastore"
)

// otherCategory collects ingredients an aisle file does not mention.
const otherCategory = "other"

// dbFunc exposes datastore lookups as the db() template function. Lookup
// failures abort the render; there is no default-value fallback. The
// concrete datastore error is recorded on state because the engine only
// carries its message.
func dbFunc(store *datastore.Store, state *State) func(string) (any, error) {
	return func(path string) (any, error) {
		if store == nil {
			return nil, fmt.Errorf("db(%q): no datastore configured", path)
		}
		value, err := store.Get(path)
		if err != nil {
			if state.LookupErr == nil {
				state.LookupErr = err
			}
			return nil, err
		}
		return displayValue(value), nil
	}
}

// displayValue rewrites every float inside a datastore value into its
// display form, recursing through mappings and sequences.
func displayValue(v any) any {
	switch t := v.(type) {
	case float64:
		return displayNumber(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = displayValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = displayValue(val)
		}
		return out
	}
	return v
}

// ingredientList merges duplicate ingredients into a shopping list.
// Numeric quantities with the same unit are summed; differing units and
// textual quantities are kept as separate amounts under the same name.
// The result is sorted by ingredient name.
//
// Each entry carries the merged amounts twice: "amounts" as structured
// records and "quantities" as a ready-to-print string.
func ingredientList(items []map[string]any) ([]map[string]any, error) {
	type amount struct {
		value   float64
		numeric bool
		text    string
		unit    string
	}
	type entry struct {
		name    string
		amounts []*amount
	}

	index := make(map[string]*entry)
	var names []string

	merge := func(e *entry, value float64, unit string) {
		for _, a := range e.amounts {
			if a.numeric && a.unit == unit {
				a.value += value
				return
			}
		}
		e.amounts = append(e.amounts, &amount{value: value, numeric: true, unit: unit})
	}

	for _, item := range items {
		name, ok := item["name"].(string)
		if !ok {
			return nil, fmt.Errorf("ingredient list: entry has no name")
		}
		e := index[name]
		if e == nil {
			e = &entry{name: name}
			index[name] = e
			names = append(names, name)
		}

		unit, _ := item["unit"].(string)
		switch q := item["quantity"].(type) {
		case nil:
			// Name-only mention; keeps the ingredient in the list.
		case string:
			// Fractional quantities arrive as display strings; they still
			// merge numerically. Only genuine text ("some") stays text.
			if f, err := strconv.ParseFloat(q, 64); err == nil {
				merge(e, f, unit)
			} else {
				e.amounts = append(e.amounts, &amount{text: q, unit: unit})
			}
		case int64, int, float64:
			merge(e, asFloat(q), unit)
		default:
			return nil, fmt.Errorf("ingredient list: unsupported quantity type %T for %q", q, name)
		}
	}

	sort.Strings(names)

	list := make([]map[string]any, 0, len(names))
	for _, name := range names {
		e := index[name]
		amounts := make([]map[string]any, 0, len(e.amounts))
		display := make([]string, 0, len(e.amounts))
		for _, a := range e.amounts {
			var value any
			if a.numeric {
				value = displayNumber(a.value)
			} else {
				value = a.text
			}
			amounts = append(amounts, map[string]any{
				"quantity": value,
				"unit":     a.unit,
			})
			display = append(display, quantity.Format(value, a.unit))
		}
		list = append(list, map[string]any{
			"name":       name,
			"amounts":    amounts,
			"quantities": strings.Join(display, ", "),
		})
	}
	return list, nil
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// aisledFunc groups ingredients by the category an aisle file assigns
// them. Unlisted ingredients land under "other". Without an aisle file
// everything is "other". Categories come back as a list sorted by name,
// each entry a {name, items} record, so iteration order is stable.
func aisledFunc(aisle *pantry.File) func([]map[string]any) ([]map[string]any, error) {
	return func(items []map[string]any) ([]map[string]any, error) {
		grouped := make(map[string][]map[string]any)
		var categories []string

		for _, item := range items {
			name, _ := item["name"].(string)
			category := otherCategory
			if aisle != nil {
				if c, ok := aisle.Category(name); ok && c != "" {
					category = c
				}
			}
			if _, seen := grouped[category]; !seen {
				categories = append(categories, category)
			}
			grouped[category] = append(grouped[category], item)
		}

		sort.Strings(categories)

		out := make([]map[string]any, 0, len(categories))
		for _, category := range categories {
			out = append(out, map[string]any{
				"name":  category,
				"items": grouped[category],
			})
		}
		return out, nil
	}
}

// pantryFilterFunc filters ingredients against a pantry file. With
// inPantry true it keeps only listed ingredients, otherwise only unlisted
// ones. Without a pantry file nothing is considered stocked.
func pantryFilterFunc(p *pantry.File, inPantry bool) func([]map[string]any) ([]map[string]any, error) {
	return func(items []map[string]any) ([]map[string]any, error) {
		kept := make([]map[string]any, 0, len(items))
		for _, item := range items {
			name, _ := item["name"].(string)
			stocked := p != nil && p.Contains(name)
			if stocked == inPantry {
				kept = append(kept, item)
			}
		}
		return kept, nil
	}
}
