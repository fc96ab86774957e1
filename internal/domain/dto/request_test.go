package dto

import (
	"testing"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestCreateRecipeRequest_Validate(t *testing.T) {
	complete := CreateRecipeRequest{
		Name:         "Pancakes",
		Ingredients:  []IngredientRequest{{Name: "Flour", Amount: 200, Unit: "g"}},
		Instructions: []string{"Mix"},
	}

	tests := []struct {
		name    string
		mutate  func(*CreateRecipeRequest)
		wantErr error
	}{
		{name: "complete recipe", mutate: func(*CreateRecipeRequest) {}},
		{name: "missing name", mutate: func(r *CreateRecipeRequest) { r.Name = "" }, wantErr: ErrRecipeIncomplete},
		{name: "blank name", mutate: func(r *CreateRecipeRequest) { r.Name = "   " }, wantErr: ErrRecipeIncomplete},
		{name: "missing ingredients", mutate: func(r *CreateRecipeRequest) { r.Ingredients = nil }, wantErr: ErrRecipeIncomplete},
		{name: "missing instructions", mutate: func(r *CreateRecipeRequest) { r.Instructions = []string{} }, wantErr: ErrRecipeIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := complete
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestCreateRecipeRequest_ToModel(t *testing.T) {
	t.Run("servings default to one", func(t *testing.T) {
		req := CreateRecipeRequest{
			Name:         " Pancakes ",
			Ingredients:  []IngredientRequest{{Name: "Flour", Amount: 200, Unit: "g"}},
			Instructions: []string{"Mix"},
		}

		recipe := req.ToModel()

		assert.Equal(t, "Pancakes", recipe.Name)
		require.NotNil(t, recipe.Servings)
		assert.Equal(t, 1, *recipe.Servings)
		assert.Equal(t, []model.Ingredient{{Name: "Flour", Amount: 200, Unit: "g"}}, recipe.Ingredients)
		assert.Equal(t, []string{}, recipe.Tags)
	})

	t.Run("explicit servings are kept", func(t *testing.T) {
		req := CreateRecipeRequest{Name: "Soup", Servings: intPtr(6), Tags: []string{"warm"}}

		recipe := req.ToModel()

		assert.Equal(t, 6, *recipe.Servings)
		assert.Equal(t, []string{"warm"}, recipe.Tags)
	})
}

func TestUpdateRecipeRequest(t *testing.T) {
	t.Run("empty update is rejected", func(t *testing.T) {
		req := UpdateRecipeRequest{}
		assert.True(t, req.IsEmpty())
		assert.Equal(t, ErrNoUpdateData, req.Validate())
	})

	t.Run("empty tag list still counts as an update", func(t *testing.T) {
		req := UpdateRecipeRequest{Tags: []string{}}
		assert.False(t, req.IsEmpty())
		assert.NoError(t, req.Validate())
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		req := UpdateRecipeRequest{Name: strPtr(" ")}
		assert.Equal(t, ErrEmptyRecipeName, req.Validate())
	})

	t.Run("omitted fields stay nil", func(t *testing.T) {
		req := UpdateRecipeRequest{Servings: intPtr(3)}
		require.NoError(t, req.Validate())

		update := req.ToUpdate()

		assert.Equal(t, 3, *update.Servings)
		assert.Nil(t, update.Name)
		assert.Nil(t, update.Ingredients)
	})

	t.Run("ingredients are converted", func(t *testing.T) {
		req := UpdateRecipeRequest{Ingredients: []IngredientRequest{{Name: "Rice", Amount: 250, Unit: "g"}}}

		update := req.ToUpdate()

		assert.Equal(t, []model.Ingredient{{Name: "Rice", Amount: 250, Unit: "g"}}, update.Ingredients)
	})
}

func TestShoppingListRequest_Selections(t *testing.T) {
	req := ShoppingListRequest{Recipes: []MealSelectionRequest{
		{RecipeID: 2, TargetPersons: intPtr(6)},
		{RecipeID: 1},
	}}

	selections := req.Selections()

	require.Len(t, selections, 2)
	assert.Equal(t, int64(2), selections[0].RecipeID)
	assert.Equal(t, 6, selections[0].Persons())
	assert.Equal(t, int64(1), selections[1].RecipeID)
	assert.Equal(t, model.DefaultTargetPersons, selections[1].Persons())
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{name: "with field", err: &ValidationError{Field: "name", Message: "must not be empty"}, expected: "name: must not be empty"},
		{name: "without field", err: ErrRecipeIncomplete, expected: "Recipe incomplete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
