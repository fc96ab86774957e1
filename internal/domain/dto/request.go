// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strings"

	"github.com/guttosm/recipe-service/internal/domain/model"
)

// MealSelectionRequest selects a recipe and the number of persons to cook for.
//
// @Description One recipe of a shopping list request
// @Example {"recipe_id": 1, "target_persons": 4}
type MealSelectionRequest struct {
	// RecipeID identifies the recipe. Unknown ids are skipped.
	RecipeID int64 `json:"recipe_id" example:"1"`
	// TargetPersons defaults to 4 when omitted.
	TargetPersons *int `json:"target_persons,omitempty" binding:"omitempty,gte=0" example:"4" minimum:"0"`
} // @name MealSelectionRequest

// ShoppingListRequest represents the JSON request body for the shopping list endpoint.
//
// @Description Request to build a consolidated shopping list
// @Example {"recipes": [{"recipe_id": 1, "target_persons": 4}, {"recipe_id": 2}], "email": "cook@example.com"}
type ShoppingListRequest struct {
	Recipes []MealSelectionRequest `json:"recipes" binding:"dive"`
	// Email is optional; when set the list is also sent to this address.
	Email string `json:"email,omitempty" binding:"omitempty,email" example:"cook@example.com"`
} // @name ShoppingListRequest

// Selections converts the request into domain meal selections, keeping order.
func (r *ShoppingListRequest) Selections() []model.MealSelection {
	selections := make([]model.MealSelection, len(r.Recipes))
	for i, sel := range r.Recipes {
		selections[i] = model.MealSelection{RecipeID: sel.RecipeID, TargetPersons: sel.TargetPersons}
	}
	return selections
}

// IngredientRequest is one ingredient line of a recipe request.
type IngredientRequest struct {
	Name   string  `json:"name" binding:"required" example:"Flour"`
	Amount float64 `json:"amount" binding:"gte=0" example:"200"`
	Unit   string  `json:"unit" example:"g"`
} // @name IngredientRequest

// CreateRecipeRequest represents the JSON request body for creating a recipe.
//
// @Description Request to create a recipe
type CreateRecipeRequest struct {
	Name            string              `json:"name" example:"Pancakes"`
	Category        string              `json:"category,omitempty" example:"Breakfast"`
	Ingredients     []IngredientRequest `json:"ingredients" binding:"dive"`
	Instructions    []string            `json:"instructions"`
	CookingTime     *int                `json:"cooking_time,omitempty" binding:"omitempty,gte=0" example:"15"`
	PreparationTime *int                `json:"preparation_time,omitempty" binding:"omitempty,gte=0" example:"10"`
	Tags            []string            `json:"tags,omitempty"`
	// Servings defaults to 1 when omitted.
	Servings *int   `json:"servings,omitempty" binding:"omitempty,gte=0" example:"2"`
	ImageURL string `json:"image_url,omitempty" binding:"omitempty,url"`
} // @name CreateRecipeRequest

// UpdateRecipeRequest represents a partial recipe update; omitted fields are unchanged.
//
// @Description Partial recipe update
type UpdateRecipeRequest struct {
	Name            *string             `json:"name,omitempty" example:"Crepes"`
	Category        *string             `json:"category,omitempty"`
	Ingredients     []IngredientRequest `json:"ingredients,omitempty" binding:"omitempty,dive"`
	Instructions    []string            `json:"instructions,omitempty"`
	CookingTime     *int                `json:"cooking_time,omitempty" binding:"omitempty,gte=0"`
	PreparationTime *int                `json:"preparation_time,omitempty" binding:"omitempty,gte=0"`
	Tags            []string            `json:"tags,omitempty"`
	Servings        *int                `json:"servings,omitempty" binding:"omitempty,gte=0"`
	ImageURL        *string             `json:"image_url,omitempty"`
} // @name UpdateRecipeRequest

// ListRecipesQuery holds the query parameters of the recipe list endpoint.
type ListRecipesQuery struct {
	Category string `form:"category"`
	Tag      string `form:"tag"`
	Limit    int    `form:"limit" binding:"omitempty,gte=0,lte=500"`
	Skip     int    `form:"skip" binding:"omitempty,gte=0"`
}

// RecipeHistoryQuery holds the query parameters of the recipe history endpoint.
type RecipeHistoryQuery struct {
	Action string `form:"action" binding:"omitempty,oneof=create_recipe update_recipe delete_recipe shopping_list send_shopping_list"`
	Limit  int    `form:"limit" binding:"omitempty,gte=0,lte=100"`
	Skip   int    `form:"skip" binding:"omitempty,gte=0"`
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

var (
	// ErrRecipeIncomplete is returned when name, ingredients or instructions are missing.
	ErrRecipeIncomplete = &ValidationError{Message: "Recipe incomplete"}
	// ErrEmptyRecipeName is returned when an update blanks the recipe name.
	ErrEmptyRecipeName = &ValidationError{Field: "name", Message: "must not be empty"}
	// ErrNoUpdateData is returned when an update request sets no field.
	ErrNoUpdateData = &ValidationError{Message: "No update data provided"}
)

// Validate checks that the recipe has a name, ingredients and instructions.
func (r *CreateRecipeRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || len(r.Ingredients) == 0 || len(r.Instructions) == 0 {
		return ErrRecipeIncomplete
	}
	return nil
}

// ToModel converts the request into a recipe, defaulting servings to 1.
func (r *CreateRecipeRequest) ToModel() *model.Recipe {
	servings := r.Servings
	if servings == nil {
		one := 1
		servings = &one
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &model.Recipe{
		Name:            strings.TrimSpace(r.Name),
		Category:        r.Category,
		Ingredients:     toIngredients(r.Ingredients),
		Instructions:    r.Instructions,
		CookingTime:     r.CookingTime,
		PreparationTime: r.PreparationTime,
		Tags:            tags,
		Servings:        servings,
		ImageURL:        r.ImageURL,
	}
}

// Validate rejects empty updates and updates that would blank the recipe name.
func (r *UpdateRecipeRequest) Validate() error {
	if r.IsEmpty() {
		return ErrNoUpdateData
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return ErrEmptyRecipeName
	}
	return nil
}

// IsEmpty reports whether no field is set.
func (r *UpdateRecipeRequest) IsEmpty() bool {
	return r.Name == nil && r.Category == nil && r.Ingredients == nil && r.Instructions == nil &&
		r.CookingTime == nil && r.PreparationTime == nil && r.Tags == nil && r.Servings == nil && r.ImageURL == nil
}

// ToUpdate converts the request into a domain partial update.
func (r *UpdateRecipeRequest) ToUpdate() model.RecipeUpdate {
	update := model.RecipeUpdate{
		Name:            r.Name,
		Category:        r.Category,
		Instructions:    r.Instructions,
		CookingTime:     r.CookingTime,
		PreparationTime: r.PreparationTime,
		Tags:            r.Tags,
		Servings:        r.Servings,
		ImageURL:        r.ImageURL,
	}
	if r.Ingredients != nil {
		update.Ingredients = toIngredients(r.Ingredients)
	}
	return update
}

func toIngredients(in []IngredientRequest) []model.Ingredient {
	out := make([]model.Ingredient, len(in))
	for i, ing := range in {
		out[i] = model.Ingredient{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit}
	}
	return out
}
