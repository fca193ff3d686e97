// Package render builds the template execution context for a recipe and
// registers the recipe-domain filters and functions into the template
// engine.
//
// Recipes parse as flat step lists; section groupings collapse into
// steps.
package render

import (
	"math"
	"strconv"
	"strings"

	cooklang "github.com/aquilax/cooklang-go"
	pongo2 "github.com/flosch/pongo2/v6"

	"github.com/cookworks/cookreport/internal/pantry"
	"github.com/cookworks/cookreport/internal/quantity"
	"github.com/cookworks/cookreport/pkg/datastore"
)

// Options carries the per-render collaborators the context needs.
type Options struct {
	// Scale is the multiplier applied to every numeric ingredient quantity.
	Scale float64

	// Store resolves db() lookups. Nil when no datastore is configured;
	// db() calls then fail the render.
	Store *datastore.Store

	// Aisle groups ingredients for aisled(). Nil when not configured.
	Aisle *pantry.File

	// Pantry backs excluding_pantry() and from_pantry(). Nil when not
	// configured.
	Pantry *pantry.File
}

// State carries facts out of a render that the engine cannot return
// itself. Errors returned by context functions cross the engine as
// formatted strings, so the concrete lookup error is recorded here.
type State struct {
	// LookupErr is the first datastore lookup failure, nil when every
	// db() call succeeded.
	LookupErr error
}

// BuildContext produces the execution context for one render: the recipe
// data (scaled), plus every template function the reports can call. The
// returned State must be consulted after execution.
func BuildContext(recipe *cooklang.Recipe, opts Options) (pongo2.Context, *State) {
	state := &State{}
	steps := buildSteps(recipe, opts.Scale)
	ingredients := collectIngredients(steps)
	meta := buildMetadata(recipe)

	ctx := pongo2.Context{
		"scale":       formatDecimal(opts.Scale),
		"ingredients": ingredients,
		"cookware":    collectCookware(steps),
		"timers":      collectTimers(steps),
		"metadata":    meta,
		"steps":       steps,
		// Section groupings collapse into the flat step list.
		"recipe_template": map[string]any{
			"metadata": meta,
			"steps":    steps,
		},
	}

	ctx["db"] = dbFunc(opts.Store, state)
	ctx["get_ingredient_list"] = ingredientList
	ctx["aisled"] = aisledFunc(opts.Aisle)
	ctx["excluding_pantry"] = pantryFilterFunc(opts.Pantry, false)
	ctx["from_pantry"] = pantryFilterFunc(opts.Pantry, true)

	registerNumberFunctions(ctx)

	return ctx, state
}

// buildSteps projects recipe steps into template-facing records. Every
// numeric quantity is scaled here, once, so all downstream views agree.
func buildSteps(recipe *cooklang.Recipe, scale float64) []map[string]any {
	steps := make([]map[string]any, 0, len(recipe.Steps))
	for _, step := range recipe.Steps {
		ingredients := make([]map[string]any, 0, len(step.Ingredients))
		for _, ing := range step.Ingredients {
			ingredients = append(ingredients, map[string]any{
				"name":     ing.Name,
				"quantity": scaledQuantity(ing.Amount, scale),
				"unit":     ing.Amount.Unit,
			})
		}

		cookware := make([]map[string]any, 0, len(step.Cookware))
		for _, cw := range step.Cookware {
			cookware = append(cookware, map[string]any{"name": cw.Name})
		}

		timers := make([]map[string]any, 0, len(step.Timers))
		for _, tm := range step.Timers {
			timers = append(timers, map[string]any{
				"name":     tm.Name,
				"duration": displayNumber(tm.Duration),
				"unit":     tm.Unit,
			})
		}

		steps = append(steps, map[string]any{
			"directions":  step.Directions,
			"ingredients": ingredients,
			"cookware":    cookware,
			"timers":      timers,
		})
	}
	return steps
}

func collectIngredients(steps []map[string]any) []map[string]any {
	var all []map[string]any
	for _, step := range steps {
		all = append(all, step["ingredients"].([]map[string]any)...)
	}
	if all == nil {
		all = []map[string]any{}
	}
	return all
}

func collectCookware(steps []map[string]any) []map[string]any {
	var all []map[string]any
	for _, step := range steps {
		all = append(all, step["cookware"].([]map[string]any)...)
	}
	if all == nil {
		all = []map[string]any{}
	}
	return all
}

func collectTimers(steps []map[string]any) []map[string]any {
	var all []map[string]any
	for _, step := range steps {
		all = append(all, step["timers"].([]map[string]any)...)
	}
	if all == nil {
		all = []map[string]any{}
	}
	return all
}

func buildMetadata(recipe *cooklang.Recipe) map[string]string {
	meta := make(map[string]string, len(recipe.Metadata))
	for k, v := range recipe.Metadata {
		meta[k] = v
	}
	return meta
}

// scaledQuantity returns the template value for an ingredient amount:
// nil when absent, the raw text for textual quantities ("some"), and a
// scaled number otherwise.
func scaledQuantity(amount cooklang.IngredientAmount, scale float64) any {
	if !amount.IsNumeric {
		if amount.QuantityRaw == "" {
			return nil
		}
		return amount.QuantityRaw
	}
	return displayNumber(amount.Quantity * scale)
}

// displayNumber returns the template value for a number: int64 for
// integral values, the canonical short string otherwise. The engine
// prints raw float64 with six decimals, so floats never reach it
// undressed.
func displayNumber(v float64) any {
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return int64(v)
	}
	return quantity.FormatNumber(v)
}

// formatDecimal renders a float with at least one decimal place, so
// whole values keep a trailing ".0" (the scale factor reads "1.0").
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
