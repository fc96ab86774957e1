//go:build !integration

package repository

import (
	"context"
	"testing"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestInMemoryRecipeRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRecipeRepository()

	first, err := repo.Create(ctx, &model.Recipe{
		Name:        "Pancakes",
		Category:    "Breakfast",
		Servings:    intPtr(2),
		Ingredients: []model.Ingredient{{Name: "Flour", Amount: 200, Unit: "g"}},
		Tags:        []string{"sweet"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := repo.Create(ctx, &model.Recipe{Name: "Soup", Category: "Dinner"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", got.Name)

	updated, err := repo.Update(ctx, 1, model.RecipeUpdate{Name: strPtr("Crepes"), Servings: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, "Crepes", updated.Name)
	assert.Equal(t, 4, *updated.Servings)
	assert.Equal(t, "Breakfast", updated.Category)

	require.NoError(t, repo.Delete(ctx, 2))
	gone, err := repo.GetByID(ctx, 2)
	assert.NoError(t, err)
	assert.Nil(t, gone)

	assert.ErrorIs(t, repo.Delete(ctx, 2), ErrRecipeNotFound)
	_, err = repo.Update(ctx, 2, model.RecipeUpdate{})
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestInMemoryRecipeRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRecipeRepository(model.Recipe{
		ID:          5,
		Name:        "Salad",
		Ingredients: []model.Ingredient{{Name: "Lettuce", Amount: 1, Unit: "pcs"}},
	})

	got, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	got.Ingredients[0].Name = "changed"

	again, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Lettuce", again.Ingredients[0].Name)

	next, err := repo.Create(ctx, &model.Recipe{Name: "After seed"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), next.ID)
}

func TestInMemoryRecipeRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRecipeRepository(
		model.Recipe{ID: 3, Name: "C", Category: "Dinner", Tags: []string{"quick"}},
		model.Recipe{ID: 1, Name: "A", Category: "Breakfast"},
		model.Recipe{ID: 2, Name: "B", Category: "Dinner"},
	)

	tests := []struct {
		name    string
		opts    RecipeListOptions
		wantIDs []int64
	}{
		{name: "all ordered by id", opts: RecipeListOptions{}, wantIDs: []int64{1, 2, 3}},
		{name: "by category", opts: RecipeListOptions{Category: "Dinner"}, wantIDs: []int64{2, 3}},
		{name: "by tag", opts: RecipeListOptions{Tag: "quick"}, wantIDs: []int64{3}},
		{name: "skip and limit", opts: RecipeListOptions{Skip: 1, Limit: 1}, wantIDs: []int64{2}},
		{name: "no match", opts: RecipeListOptions{Category: "Dessert"}, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, err := repo.List(ctx, tt.opts)
			require.NoError(t, err)

			ids := make([]int64, 0, len(recipes))
			for _, r := range recipes {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestInMemoryRecipeRepository_MigrateLegacyIngredients(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRecipeRepository(
		model.Recipe{ID: 1, Ingredients: []model.Ingredient{
			{Name: "Flour", AmountAndUnit: "200 g"},
			{Name: "Milk", AmountAndUnit: "0,5l"},
		}},
		model.Recipe{ID: 2, Ingredients: []model.Ingredient{{Name: "Eggs", Amount: 2, Unit: "pcs"}}},
	)

	migrated, err := repo.MigrateLegacyIngredients(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, migrated)

	recipe, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []model.Ingredient{
		{Name: "Flour", Amount: 200, Unit: "g"},
		{Name: "Milk", Amount: 0.5, Unit: "l"},
	}, recipe.Ingredients)

	again, err := repo.MigrateLegacyIngredients(ctx)
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestUpdateDocument(t *testing.T) {
	doc := updateDocument(model.RecipeUpdate{
		Name:     strPtr("Stew"),
		Servings: intPtr(6),
		Tags:     []string{},
	})

	assert.Equal(t, "Stew", doc["name"])
	assert.Equal(t, 6, doc["servings"])
	assert.Equal(t, []string{}, doc["tags"])
	assert.NotContains(t, doc, "category")
	assert.NotContains(t, doc, "ingredients")
}
