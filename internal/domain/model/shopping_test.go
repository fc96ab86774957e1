package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealSelection_Persons(t *testing.T) {
	assert.Equal(t, DefaultTargetPersons, MealSelection{RecipeID: 1}.Persons())
	assert.Equal(t, 2, MealSelection{RecipeID: 1, TargetPersons: intPtr(2)}.Persons())
	assert.Equal(t, 0, MealSelection{RecipeID: 1, TargetPersons: intPtr(0)}.Persons())
}

func TestEmptyShoppingList(t *testing.T) {
	list := EmptyShoppingList()
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
	assert.Nil(t, list.SkippedRecipeIDs)
}
