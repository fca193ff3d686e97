package render

import (
	"testing"

	cooklang "github.com/aquilax/cooklang-go"
	pongo2 "github.com/flosch/pongo2/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pancakes = `>> title: Pancakes

Mix @eggs{3%large} with @milk{250%ml} and @flour{125%g} in a #bowl until smooth.

Bake for ~{25%minutes}.
`

func parseRecipe(t *testing.T, src string) *cooklang.Recipe {
	t.Helper()
	recipe, err := cooklang.ParseString(src)
	require.NoError(t, err)
	return recipe
}

func TestBuildContextIngredients(t *testing.T) {
	recipe := parseRecipe(t, pancakes)
	ctx, _ := BuildContext(recipe, Options{Scale: 1})

	ingredients, ok := ctx["ingredients"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, ingredients, 3)

	// Source order, names as authored.
	assert.Equal(t, "eggs", ingredients[0]["name"])
	assert.Equal(t, "milk", ingredients[1]["name"])
	assert.Equal(t, "flour", ingredients[2]["name"])

	// Integral quantities are stored as integers.
	assert.Equal(t, int64(3), ingredients[0]["quantity"])
	assert.Equal(t, "large", ingredients[0]["unit"])
	assert.Equal(t, int64(250), ingredients[1]["quantity"])
	assert.Equal(t, "ml", ingredients[1]["unit"])
}

func TestBuildContextScaling(t *testing.T) {
	recipe := parseRecipe(t, pancakes)
	ctx, _ := BuildContext(recipe, Options{Scale: 2})

	assert.Equal(t, "2.0", ctx["scale"])

	ingredients := ctx["ingredients"].([]map[string]any)
	assert.Equal(t, int64(6), ingredients[0]["quantity"])
	assert.Equal(t, int64(500), ingredients[1]["quantity"])
	assert.Equal(t, int64(250), ingredients[2]["quantity"])
}

func TestBuildContextFractionalScaling(t *testing.T) {
	recipe := parseRecipe(t, pancakes)
	ctx, _ := BuildContext(recipe, Options{Scale: 0.25})

	assert.Equal(t, "0.25", ctx["scale"])

	// Non-integral quantities are stored as display strings; the engine
	// prints raw floats with six decimals.
	ingredients := ctx["ingredients"].([]map[string]any)
	assert.Equal(t, "0.75", ingredients[0]["quantity"])
	assert.Equal(t, "62.5", ingredients[1]["quantity"])
}

func TestBuildContextRecipeData(t *testing.T) {
	recipe := parseRecipe(t, pancakes)
	ctx, _ := BuildContext(recipe, Options{Scale: 1})

	metadata, ok := ctx["metadata"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Pancakes", metadata["title"])

	cookware := ctx["cookware"].([]map[string]any)
	require.Len(t, cookware, 1)
	assert.Equal(t, "bowl", cookware[0]["name"])

	timers := ctx["timers"].([]map[string]any)
	require.Len(t, timers, 1)
	assert.Equal(t, int64(25), timers[0]["duration"])
	assert.Equal(t, "minutes", timers[0]["unit"])

	steps := ctx["steps"].([]map[string]any)
	require.Len(t, steps, 2)
	assert.Len(t, steps[0]["ingredients"], 3)
	assert.Len(t, steps[1]["timers"], 1)

	tpl, ok := ctx["recipe_template"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, ctx["metadata"], tpl["metadata"])
	assert.Equal(t, ctx["steps"], tpl["steps"])
}

func TestBuildContextEmptyRecipe(t *testing.T) {
	recipe := parseRecipe(t, "Just stir.\n")
	ctx, _ := BuildContext(recipe, Options{Scale: 1})

	assert.Empty(t, ctx["ingredients"])
	assert.Empty(t, ctx["cookware"])
	assert.Empty(t, ctx["timers"])
}

// renderString compiles and executes a template against a context.
func renderString(t *testing.T, tpl string, ctx pongo2.Context) string {
	t.Helper()
	compiled, err := pongo2.FromString(tpl)
	require.NoError(t, err)
	out, err := compiled.Execute(ctx)
	require.NoError(t, err)
	return out
}

func TestContextRendersThroughEngine(t *testing.T) {
	recipe := parseRecipe(t, pancakes)
	ctx, _ := BuildContext(recipe, Options{Scale: 2})

	out := renderString(t,
		`{{ scale }}x: {% for i in ingredients %}{{ i.name }}={{ i.quantity|quantity:i.unit }};{% endfor %}`,
		ctx)
	assert.Equal(t, "2.0x: eggs=6 large;milk=500 ml;flour=250 g;", out)
}

func TestFractionalValuesRenderTrimmed(t *testing.T) {
	recipe := parseRecipe(t, pancakes)
	ctx, _ := BuildContext(recipe, Options{Scale: 0.25})

	out := renderString(t,
		`{{ scale }}|{{ ingredients.0.quantity }}|{{ ingredients.1.quantity }}|{{ timers.0.duration }}`,
		ctx)
	assert.Equal(t, "0.25|0.75|62.5|25", out)
}
