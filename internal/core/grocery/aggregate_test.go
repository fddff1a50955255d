package grocery

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinner-menu/internal/core/ingredient"
	"dinner-menu/internal/pkg/common"
)

func recipe(title string, lines ...string) common.Recipe {
	return common.Recipe{Title: title, Ingredients: ingredient.ParseLines(lines)}
}

func TestAggregate_Example(t *testing.T) {
	t.Parallel()

	got := Aggregate([]common.Recipe{
		recipe("a", "garlic", "pasta"),
		recipe("b", "garlic", "olive oil"),
	})

	assert.Equal(t, []common.GroceryLine{
		{Ingredient: "garlic", Count: 2},
		{Ingredient: "olive oil", Count: 1},
		{Ingredient: "pasta", Count: 1},
	}, got)
}

func TestAggregate_ExactGroupingOnNormalizedItem(t *testing.T) {
	t.Parallel()

	got := Aggregate([]common.Recipe{
		recipe("a", "1 Onion", "2 cups flour"),
		recipe("b", "1 yellow onion", "2 cups  Flour"),
		recipe("c", "onion", "Look it up", "see recipe for spices"),
	})

	assert.Equal(t, []common.GroceryLine{
		{Ingredient: "flour", Count: 2},
		{Ingredient: "onion", Count: 2},
		{Ingredient: "yellow onion", Count: 1},
	}, got)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	t.Parallel()

	recipes := []common.Recipe{
		recipe("a", "garlic", "basil", "2 tomatoes"),
		recipe("b", "garlic", "olive oil"),
		recipe("c", "basil", "mozzarella"),
		recipe("d", "1 lb pasta", "garlic"),
	}
	want := Aggregate(recipes)

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 10; i++ {
		shuffled := append([]common.Recipe(nil), recipes...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Aggregate(shuffled))
	}
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	got := Aggregate(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTotals(t *testing.T) {
	t.Parallel()

	got := Totals([]common.Recipe{
		recipe("Bread", "2 cups flour", "1 tsp salt", "salt to taste"),
		recipe("Pancakes", "1 cup flour", "2-3 eggs", "100 g flour"),
		recipe("Omelette", "3 eggs", "as needed butter"),
	})

	require.Len(t, got, 5)

	assert.Equal(t, "eggs", got[0].Item)
	require.NotNil(t, got[0].Quantity)
	assert.InDelta(t, 5.0, *got[0].Quantity, 1e-9)
	assert.Equal(t, []string{"Omelette", "Pancakes"}, got[0].Recipes)
	assert.Equal(t, "5 eggs", got[0].Display)

	assert.Equal(t, "flour", got[1].Item)
	assert.Equal(t, "cup", got[1].Unit)
	assert.InDelta(t, 3.0, *got[1].Quantity, 1e-9)
	assert.Equal(t, "3 cup flour", got[1].Display)

	assert.Equal(t, "flour", got[2].Item)
	assert.Equal(t, "gram", got[2].Unit)

	assert.Equal(t, "salt", got[3].Item)
	assert.Equal(t, "tsp", got[3].Unit)

	// no quantity at all, so nothing to sum
	assert.Equal(t, "salt to taste", got[4].Item)
	assert.Nil(t, got[4].Quantity)
	assert.Equal(t, "salt to taste", got[4].Display)
}
