package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/mocks"
	"github.com/guttosm/recipe-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRecipe() *model.Recipe {
	return &model.Recipe{
		Name:         "Pancakes",
		Servings:     intPtr(2),
		Ingredients:  []model.Ingredient{{Name: "Flour", Amount: 200, Unit: "g"}},
		Instructions: []string{"Mix", "Fry"},
	}
}

func TestRecipeService_Create(t *testing.T) {
	tests := []struct {
		name      string
		recipe    func() *model.Recipe
		setupMock func(*mocks.MockRecipeRepositoryInterface)
		wantErr   error
		wantHook  bool
	}{
		{
			name:   "stores valid recipe",
			recipe: validRecipe,
			setupMock: func(m *mocks.MockRecipeRepositoryInterface) {
				created := validRecipe()
				created.ID = 1
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Recipe")).Return(created, nil)
			},
			wantHook: true,
		},
		{
			name: "rejects blank name",
			recipe: func() *model.Recipe {
				r := validRecipe()
				r.Name = " "
				return r
			},
			wantErr: ErrInvalidRecipe,
		},
		{
			name: "rejects negative amount",
			recipe: func() *model.Recipe {
				r := validRecipe()
				r.Ingredients[0].Amount = -1
				return r
			},
			wantErr: ErrInvalidRecipe,
		},
		{
			name: "rejects negative servings",
			recipe: func() *model.Recipe {
				r := validRecipe()
				r.Servings = intPtr(-2)
				return r
			},
			wantErr: ErrInvalidRecipe,
		},
		{
			name: "rejects unnamed ingredient",
			recipe: func() *model.Recipe {
				r := validRecipe()
				r.Ingredients = append(r.Ingredients, model.Ingredient{Amount: 1, Unit: "g"})
				return r
			},
			wantErr: ErrInvalidRecipe,
		},
		{
			name:   "propagates store error",
			recipe: validRecipe,
			setupMock: func(m *mocks.MockRecipeRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("write failed"))
			},
			wantErr: errors.New("write failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockRecipeRepositoryInterface)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			hookCalls := 0
			svc := NewRecipeService(repo, WithChangeHook(func() { hookCalls++ }))

			created, err := svc.Create(context.Background(), tt.recipe())

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidRecipe) {
					assert.ErrorIs(t, err, ErrInvalidRecipe)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), created.ID)
			}
			assert.Equal(t, tt.wantHook, hookCalls == 1)
			repo.AssertExpectations(t)
		})
	}
}

func TestRecipeService_Get(t *testing.T) {
	repo := repository.NewInMemoryRecipeRepository(model.Recipe{ID: 3, Name: "Soup"})
	svc := NewRecipeService(repo)

	recipe, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Soup", recipe.Name)

	_, err = svc.Get(context.Background(), 4)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecipeService_Update(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemoryRecipeRepository(model.Recipe{
		ID:          1,
		Name:        "Pancakes",
		Ingredients: []model.Ingredient{{Name: "Flour", Amount: 200, Unit: "g"}},
	})
	hookCalls := 0
	svc := NewRecipeService(repo, WithChangeHook(func() { hookCalls++ }))

	t.Run("partial update keeps other fields", func(t *testing.T) {
		name := "Crepes"
		updated, err := svc.Update(ctx, 1, model.RecipeUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Crepes", updated.Name)
		assert.Len(t, updated.Ingredients, 1)
		assert.Equal(t, 1, hookCalls)
	})

	t.Run("invalid merged recipe is rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, 1, model.RecipeUpdate{Ingredients: []model.Ingredient{{Name: "Milk", Amount: -5}}})
		assert.ErrorIs(t, err, ErrInvalidRecipe)
		assert.Equal(t, 1, hookCalls)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		_, err := svc.Update(ctx, 99, model.RecipeUpdate{})
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})
}

func TestRecipeService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemoryRecipeRepository(model.Recipe{ID: 1, Name: "Soup"})
	hookCalls := 0
	svc := NewRecipeService(repo, WithChangeHook(func() { hookCalls++ }))

	require.NoError(t, svc.Delete(ctx, 1))
	assert.Equal(t, 1, hookCalls)

	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrRecipeNotFound)
	assert.Equal(t, 1, hookCalls)
}

func TestRecipeService_List(t *testing.T) {
	repo := new(mocks.MockRecipeRepositoryInterface)
	opts := repository.RecipeListOptions{Category: "Dinner", Limit: 10}
	repo.On("List", mock.Anything, opts).Return([]model.Recipe{{ID: 1, Name: "Soup"}}, nil)
	svc := NewRecipeService(repo)

	recipes, err := svc.List(context.Background(), opts)

	require.NoError(t, err)
	assert.Len(t, recipes, 1)
	repo.AssertExpectations(t)
}

func TestRecipeService_MigrateLegacyIngredients(t *testing.T) {
	t.Run("invalidates on changes", func(t *testing.T) {
		repo := new(mocks.MockRecipeRepositoryInterface)
		repo.On("MigrateLegacyIngredients", mock.Anything).Return(2, nil)
		hookCalls := 0
		svc := NewRecipeService(repo, WithChangeHook(func() { hookCalls++ }))

		n, err := svc.MigrateLegacyIngredients(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 1, hookCalls)
	})

	t.Run("wraps store error", func(t *testing.T) {
		storeErr := errors.New("cursor failed")
		repo := new(mocks.MockRecipeRepositoryInterface)
		repo.On("MigrateLegacyIngredients", mock.Anything).Return(0, storeErr)
		svc := NewRecipeService(repo)

		_, err := svc.MigrateLegacyIngredients(context.Background())

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestRecipeService_InvalidatesShoppingListCache(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemoryRecipeRepository()
	shopping := NewShoppingListService(repo, WithCache(10, time.Minute))
	recipes := NewRecipeService(repo, WithChangeHook(shopping.InvalidateCache))

	created, err := recipes.Create(ctx, validRecipe())
	require.NoError(t, err)

	selections := []model.MealSelection{{RecipeID: created.ID, TargetPersons: intPtr(2)}}
	before, err := shopping.Build(ctx, selections)
	require.NoError(t, err)
	assert.Equal(t, float64(200), before.Items[0].Amount)

	_, err = recipes.Update(ctx, created.ID, model.RecipeUpdate{Servings: intPtr(1)})
	require.NoError(t, err)

	after, err := shopping.Build(ctx, selections)
	require.NoError(t, err)
	assert.Equal(t, float64(400), after.Items[0].Amount)
}
