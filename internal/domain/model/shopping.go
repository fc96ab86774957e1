package model

// DefaultTargetPersons is used when a meal selection does not name a serving count.
const DefaultTargetPersons = 4

// MealSelection picks a recipe and the number of persons to cook it for.
type MealSelection struct {
	RecipeID int64
	// TargetPersons is nil when the caller did not supply it.
	TargetPersons *int
}

// Persons returns the requested serving count, falling back to DefaultTargetPersons.
func (s MealSelection) Persons() int {
	if s.TargetPersons == nil {
		return DefaultTargetPersons
	}
	return *s.TargetPersons
}

// ShoppingListItem is one consolidated line of a shopping list.
//
// @Description Consolidated shopping list line
// @Example {"name": "Flour", "amount": 500, "unit": "g"}
type ShoppingListItem struct {
	Name   string  `json:"name" example:"Flour"`
	Amount float64 `json:"amount" example:"500"`
	Unit   string  `json:"unit" example:"g"`
}

// ShoppingList is the result of aggregating a set of meal selections.
type ShoppingList struct {
	// Items are ordered by the first occurrence of their (name, unit) group.
	Items []ShoppingListItem `json:"shopping_list"`
	// SkippedRecipeIDs lists selections whose recipe could not be found.
	SkippedRecipeIDs []int64 `json:"skipped_recipe_ids,omitempty"`
}

// EmptyShoppingList returns a list with no items.
func EmptyShoppingList() ShoppingList {
	return ShoppingList{Items: []ShoppingListItem{}}
}
