package recipe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinner-menu/internal/core/cache"
	"dinner-menu/internal/core/ingredient"
	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"
	"dinner-menu/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	repo, err := storage.NewSQLiteStore(&config.StoreConfig{Path: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	cacheCfg := &config.CacheConfig{Enabled: true, Backend: "memory", MaxSize: 100, TTL: time.Minute}
	store := cache.NewManager(cacheCfg)
	t.Cleanup(func() { _ = store.Close() })

	cfg := &config.Config{
		Cache:   config.CacheConfig{CatalogTTL: time.Minute},
		Suggest: config.SuggestConfig{Threshold: 0.4, Limit: 8},
	}
	s := NewService(cfg, repo, store)
	s.now = func() time.Time { return time.Date(2024, 6, 2, 17, 30, 0, 0, time.UTC) }
	return s
}

func textInput(title string, lines ...string) RecipeInput {
	raws := make([]ingredient.Raw, len(lines))
	for i, l := range lines {
		raws[i] = ingredient.FromText(l)
	}
	return RecipeInput{Title: title, Ingredients: raws, Stove: true}
}

func TestCreateRecipe_Defaults(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	in := textInput("  Garlic Pasta ", "2 cups pasta", "", "3 cloves garlic")
	in.Ingredients = append(in.Ingredients, ingredient.FromStructured(common.Ingredient{
		Quantity: "1", Unit: "Tablespoons", Item: "olive oil", Original: "1 tablespoon olive oil",
	}))

	r, err := s.CreateRecipe(ctx, in)
	require.NoError(t, err)

	assert.True(t, common.IsUUID(r.ID))
	assert.Equal(t, "Garlic Pasta", r.Title)
	assert.Equal(t, "2024-06-02", r.Date)
	assert.Equal(t, 1, r.Portions)
	require.Len(t, r.Ingredients, 3)
	assert.Equal(t, "pasta", r.Ingredients[0].Item)
	assert.Equal(t, "clove", r.Ingredients[1].Unit)
	assert.Equal(t, "tbsp", r.Ingredients[2].Unit)

	got, err := s.GetRecipe(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Title, got.Title)
	assert.Len(t, got.Ingredients, 3)
}

func TestCreateRecipe_IngredientsText(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	r, err := s.CreateRecipe(context.Background(), RecipeInput{
		Title:           "Tacos",
		IngredientsText: "1 lb ground beef\n8 tortillas\n\n1 cup salsa",
		Portions:        4,
	})
	require.NoError(t, err)
	require.Len(t, r.Ingredients, 3)
	assert.Equal(t, "ground beef", r.Ingredients[0].Item)
	assert.Equal(t, 4, r.Portions)
}

func TestCreateRecipe_Validation(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateRecipe(ctx, textInput("  ", "1 egg"))
	assert.ErrorIs(t, err, common.ErrMissingTitle)

	_, err = s.CreateRecipe(ctx, textInput("Eggs", "", "   "))
	assert.ErrorIs(t, err, common.ErrMissingIngredients)

	in := textInput("Eggs", "1 egg")
	in.Portions = -2
	_, err = s.CreateRecipe(ctx, in)
	assert.True(t, common.IsValidationError(err))
	assert.Equal(t, common.ErrCodeInvalidRequest, common.AsCustomError(err).Code)
}

func TestUpdateAndDeleteRecipe(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	r, err := s.CreateRecipe(ctx, textInput("Soup", "1 onion"))
	require.NoError(t, err)

	in := textInput("Onion Soup", "2 onions", "4 cups broth")
	in.Oven = true
	in.Date = "2024-01-15"
	updated, err := s.UpdateRecipe(ctx, r.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Onion Soup", updated.Title)
	assert.Equal(t, "2024-01-15", updated.Date)
	assert.True(t, updated.Oven)
	assert.True(t, r.CreatedAt.Equal(updated.CreatedAt))

	_, err = s.UpdateRecipe(ctx, "missing", in)
	assert.ErrorIs(t, err, common.ErrRecipeNotFound)

	require.NoError(t, s.DeleteRecipe(ctx, r.ID))
	_, err = s.GetRecipe(ctx, r.ID)
	assert.ErrorIs(t, err, common.ErrRecipeNotFound)
	assert.ErrorIs(t, s.DeleteRecipe(ctx, r.ID), common.ErrRecipeNotFound)
}

func TestCatalog_InvalidatedOnWrite(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateRecipe(ctx, textInput("Pasta", "2 cups pasta", "3 cloves garlic", "salt, see recipe"))
	require.NoError(t, err)

	catalog, err := s.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"garlic", "pasta"}, catalog)

	all, err := s.AllRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = s.CreateRecipe(ctx, textInput("Salad", "1 head lettuce", "1 cucumber"))
	require.NoError(t, err)

	catalog, err = s.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cucumber", "garlic", "lettuce", "pasta"}, catalog)

	all, err = s.AllRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSuggest(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateRecipe(ctx, textInput("Stir Fry", "1 onion", "2 cloves garlic", "1 green onion", "1 lb chicken"))
	require.NoError(t, err)

	got, err := s.Suggest(ctx, "onion", SuggestOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "green onion", got[0].Candidate)
	assert.Equal(t, "onion", got[1].Candidate)
	assert.InDelta(t, 1.0, got[1].Score, 1e-9)

	got, err = s.Suggest(ctx, "o", SuggestOptions{})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.Suggest(ctx, "onion", SuggestOptions{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	bad := 2.0
	_, err = s.Suggest(ctx, "onion", SuggestOptions{Threshold: &bad})
	assert.ErrorIs(t, err, common.ErrInvalidRequest)
}

func TestParseIngredients(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	got := s.ParseIngredients(ParseRequest{
		Lines: []string{"1 1/2 cups flour", ""},
		Text:  "2 eggs, pinch of salt",
	})
	require.Len(t, got, 4)
	assert.Equal(t, "1 1/2", got[0].Quantity)
	assert.Equal(t, "cup", got[0].Unit)
	assert.Equal(t, "flour", got[0].Item)
	assert.Equal(t, "", got[1].Original)
	assert.Equal(t, "eggs", got[2].Item)
	assert.Equal(t, "pinch of salt", got[3].Item)
}
