package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinner-menu/internal/pkg/common"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want common.Ingredient
	}{
		{"1 yellow onion", common.Ingredient{Quantity: "1", Item: "yellow onion", Original: "1 yellow onion"}},
		{"2 tablespoons olive oil", common.Ingredient{Quantity: "2", Unit: "tbsp", Item: "olive oil", Original: "2 tablespoons olive oil"}},
		{"salt to taste", common.Ingredient{Item: "salt to taste", Original: "salt to taste"}},
		{"1 1/2 cups flour", common.Ingredient{Quantity: "1 1/2", Unit: "cup", Item: "flour", Original: "1 1/2 cups flour"}},
		{"½ cup sugar", common.Ingredient{Quantity: "1/2", Unit: "cup", Item: "sugar", Original: "½ cup sugar"}},
		{"2 to 3 cloves garlic", common.Ingredient{Quantity: "2-3", Unit: "clove", Item: "garlic", Original: "2 to 3 cloves garlic"}},
		{"2 lb. ground beef", common.Ingredient{Quantity: "2", Unit: "lb", Item: "ground beef", Original: "2 lb. ground beef"}},
		{"8 fl oz milk", common.Ingredient{Quantity: "8", Unit: "fl oz", Item: "milk", Original: "8 fl oz milk"}},
		{"2 cups of rice", common.Ingredient{Quantity: "2", Unit: "cup", Item: "rice", Original: "2 cups of rice"}},
		{"1 carrot", common.Ingredient{Quantity: "1", Item: "carrot", Original: "1 carrot"}},
		{"Cup Noodles", common.Ingredient{Item: "Cup Noodles", Original: "Cup Noodles"}},
		{"  3 eggs  ", common.Ingredient{Quantity: "3", Item: "eggs", Original: "  3 eggs  "}},
		{
			"▢ 2 cloves garlic ($0.08)",
			common.Ingredient{Quantity: "2", Unit: "clove", Item: "garlic", Original: "▢ 2 cloves garlic ($0.08)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
}

func TestParse_NeverFails(t *testing.T) {
	t.Parallel()

	lines := []string{"   ", "▢", "($1.00)", "2", "2 cups", "-", "½", "1.", "to", "a few leaves of basil"}
	for _, line := range lines {
		ing := Parse(line)
		assert.NotEmpty(t, ing.Original, "line %q", line)
		assert.NotEmpty(t, ing.Item, "line %q", line)
	}
}

func TestParse_StableUnderReparse(t *testing.T) {
	t.Parallel()

	lines := []string{
		"1 yellow onion",
		"2 tablespoons olive oil",
		"salt to taste",
		"1 1/2 cups flour",
		"2 to 3 cloves garlic",
		"▢ 2 cloves garlic ($0.08)",
		"2 lb. ground beef",
		"8 fl oz milk",
		"1 c sugar",
	}

	for _, line := range lines {
		first := Parse(line)
		again := Parse(first.Original)
		assert.Equal(t, first, again, line)

		// the synthesized display form parses back to the same triple
		synth := common.NewIngredient(first.Quantity, first.Unit, first.Item, "")
		reparsed := Parse(synth.Original)
		assert.Equal(t, first.Quantity, reparsed.Quantity, line)
		assert.Equal(t, first.Unit, reparsed.Unit, line)
		assert.Equal(t, first.Item, reparsed.Item, line)
	}
}

func TestParseLines_KeepsOrderAndLength(t *testing.T) {
	t.Parallel()

	lines := []string{"2 eggs", "", "pinch of salt", "1 cup milk"}
	got := ParseLines(lines)
	require.Len(t, got, len(lines))
	assert.Equal(t, "eggs", got[0].Item)
	assert.Equal(t, "", got[1].Original)
	assert.Equal(t, "pinch of salt", got[2].Item)
	assert.Equal(t, "milk", got[3].Item)
}

func TestSplitText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"2 cups flour", "1 tsp salt"}, SplitText("2 cups flour\n\n1 tsp salt\r\n"))
	assert.Equal(t, []string{"garlic", "pasta", "olive oil"}, SplitText("garlic, pasta, olive oil"))
	assert.Equal(t, []string{"garlic"}, SplitText("garlic"))
	assert.Empty(t, SplitText(" \n "))
}

func TestNormalizeUnit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tbsp", NormalizeUnit("Tablespoons"))
	assert.Equal(t, "tbsp", NormalizeUnit("tbs"))
	assert.Equal(t, "cup", NormalizeUnit("C."))
	assert.Equal(t, "lb", NormalizeUnit("lbs"))
	assert.Equal(t, "fl oz", NormalizeUnit("fl. oz."))
	assert.Equal(t, "handful", NormalizeUnit(" Handful "))
	assert.True(t, IsUnit("cloves"))
	assert.False(t, IsUnit("noodles"))
}

func TestNormalizeItem(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jalapeno peppers", NormalizeItem("  Jalapeño   Peppers "))
	assert.Equal(t, "creme fraiche", NormalizeItem("Crème Fraîche"))
	assert.Equal(t, "", NormalizeItem("   "))
}

func TestIsPlaceholder(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPlaceholder("Look it up"))
	assert.True(t, IsPlaceholder("spices, see recipe"))
	assert.False(t, IsPlaceholder("garlic"))
}
