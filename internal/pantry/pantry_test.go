package pantry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aisleConf = `[produce]
potatoes
onions|onion

[dairy]
milk
butter

-- comment line
[grains]
flour
`

const pantryConf = `[freezer]
frozen peas = expire: 2024-12-01

[pantry]
flour
salt
`

func TestParseAisle(t *testing.T) {
	f := Parse(aisleConf)

	assert.Equal(t, []string{"produce", "dairy", "grains"}, f.Categories())
	assert.Equal(t, []string{"potatoes", "onions"}, f.Items("produce"))

	cat, ok := f.Category("milk")
	require.True(t, ok)
	assert.Equal(t, "dairy", cat)

	// Aliases resolve to the primary item's section.
	cat, ok = f.Category("onion")
	require.True(t, ok)
	assert.Equal(t, "produce", cat)

	// Case-insensitive.
	cat, ok = f.Category("Flour")
	require.True(t, ok)
	assert.Equal(t, "grains", cat)

	_, ok = f.Category("saffron")
	assert.False(t, ok)
}

func TestParsePantryAttributes(t *testing.T) {
	f := Parse(pantryConf)

	assert.True(t, f.Contains("frozen peas"))
	assert.True(t, f.Contains("salt"))
	assert.False(t, f.Contains("milk"))
	assert.Equal(t, []string{"frozen peas"}, f.Items("freezer"))
}

func TestParseItemsBeforeSection(t *testing.T) {
	f := Parse("sugar\n[pantry]\nflour\n")

	assert.True(t, f.Contains("sugar"))
	assert.True(t, f.Contains("flour"))
}

func TestParseEmpty(t *testing.T) {
	f := Parse("")

	assert.Empty(t, f.Categories())
	assert.False(t, f.Contains("anything"))
}
