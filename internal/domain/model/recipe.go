// Package model defines the core domain entities for the recipe service.
package model

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Ingredient is a single ingredient entry of a recipe.
//
// @Description Ingredient with amount and free-form unit
// @Example {"name": "Flour", "amount": 200, "unit": "g"}
type Ingredient struct {
	// Name is kept verbatim for display and compared case-insensitively for matching.
	Name string `bson:"name" json:"name" example:"Flour"`
	// Amount must be >= 0.
	Amount float64 `bson:"amount" json:"amount" example:"200"`
	// Unit is an opaque string; units are never converted into each other.
	Unit string `bson:"unit" json:"unit" example:"g"`
	// AmountAndUnit holds the legacy combined representation ("200 g").
	// Only present on recipes stored before the ingredient migration.
	AmountAndUnit string `bson:"amountAndUnit,omitempty" json:"-"`
}

// IsLegacy reports whether the ingredient still uses the combined amount/unit field.
func (i Ingredient) IsLegacy() bool {
	return i.AmountAndUnit != ""
}

// Recipe is a stored recipe record.
//
// @Description Recipe with ordered ingredients and instructions
type Recipe struct {
	ID              int64        `bson:"_id" json:"id" example:"1"`
	Name            string       `bson:"name" json:"name" example:"Pancakes"`
	Category        string       `bson:"category,omitempty" json:"category,omitempty" example:"Breakfast"`
	Ingredients     []Ingredient `bson:"ingredients" json:"ingredients"`
	Instructions    []string     `bson:"instructions" json:"instructions"`
	CookingTime     *int         `bson:"cooking_time,omitempty" json:"cooking_time" example:"15"`
	PreparationTime *int         `bson:"preparation_time,omitempty" json:"preparation_time" example:"10"`
	Tags            []string     `bson:"tags" json:"tags"`
	// Servings is the number of persons the ingredient amounts are written for.
	// Nil or zero means the amounts are used unscaled.
	Servings  *int      `bson:"servings,omitempty" json:"servings" example:"2"`
	ImageURL  string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Multiplier returns the factor that scales the recipe to targetPersons.
func (r *Recipe) Multiplier(targetPersons int) float64 {
	if r.Servings == nil || *r.Servings == 0 {
		return 1
	}
	return float64(targetPersons) / float64(*r.Servings)
}

// HasLegacyIngredients reports whether any ingredient needs migration.
func (r *Recipe) HasLegacyIngredients() bool {
	for _, ing := range r.Ingredients {
		if ing.IsLegacy() {
			return true
		}
	}
	return false
}

// RecipeUpdate carries a partial update; nil fields are left unchanged.
type RecipeUpdate struct {
	Name            *string
	Category        *string
	Ingredients     []Ingredient
	Instructions    []string
	CookingTime     *int
	PreparationTime *int
	Tags            []string
	Servings        *int
	ImageURL        *string
}

// Apply copies the set fields of u onto r.
func (u RecipeUpdate) Apply(r *Recipe) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Category != nil {
		r.Category = *u.Category
	}
	if u.Ingredients != nil {
		r.Ingredients = u.Ingredients
	}
	if u.Instructions != nil {
		r.Instructions = u.Instructions
	}
	if u.CookingTime != nil {
		r.CookingTime = u.CookingTime
	}
	if u.PreparationTime != nil {
		r.PreparationTime = u.PreparationTime
	}
	if u.Tags != nil {
		r.Tags = u.Tags
	}
	if u.Servings != nil {
		r.Servings = u.Servings
	}
	if u.ImageURL != nil {
		r.ImageURL = *u.ImageURL
	}
}

var amountUnitPattern = regexp.MustCompile(`^([\d.,]+)\s*([a-zA-Z]+)`)

// ParseAmountAndUnit splits a legacy "200 g" / "1,5kg" string into amount and
// lower-cased unit. Unparseable input yields (0, "").
func ParseAmountAndUnit(s string) (float64, string) {
	m := amountUnitPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, ""
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0, ""
	}
	return amount, strings.ToLower(m[2])
}

// MigrateIngredient converts a legacy ingredient into the amount/unit form.
// Ingredients already migrated are returned unchanged.
func MigrateIngredient(ing Ingredient) Ingredient {
	if !ing.IsLegacy() {
		return ing
	}
	amount, unit := ParseAmountAndUnit(ing.AmountAndUnit)
	return Ingredient{Name: ing.Name, Amount: amount, Unit: unit}
}
