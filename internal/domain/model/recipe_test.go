package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestRecipe_Multiplier(t *testing.T) {
	tests := []struct {
		name     string
		servings *int
		target   int
		expected float64
	}{
		{name: "scales up", servings: intPtr(2), target: 4, expected: 2},
		{name: "scales down", servings: intPtr(4), target: 2, expected: 0.5},
		{name: "same servings", servings: intPtr(4), target: 4, expected: 1},
		{name: "nil servings uses 1", servings: nil, target: 6, expected: 1},
		{name: "zero servings uses 1", servings: intPtr(0), target: 6, expected: 1},
		{name: "zero target", servings: intPtr(3), target: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Recipe{Servings: tt.servings}
			assert.InDelta(t, tt.expected, r.Multiplier(tt.target), 1e-9)
		})
	}
}

func TestParseAmountAndUnit(t *testing.T) {
	tests := []struct {
		input  string
		amount float64
		unit   string
	}{
		{input: "200 g", amount: 200, unit: "g"},
		{input: "1,5kg", amount: 1.5, unit: "kg"},
		{input: "0.25 L", amount: 0.25, unit: "l"},
		{input: "  3 EL", amount: 3, unit: "el"},
		{input: "a pinch", amount: 0, unit: ""},
		{input: "", amount: 0, unit: ""},
		{input: "1.2.3 g", amount: 0, unit: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, unit := ParseAmountAndUnit(tt.input)
			assert.InDelta(t, tt.amount, amount, 1e-9)
			assert.Equal(t, tt.unit, unit)
		})
	}
}

func TestMigrateIngredient(t *testing.T) {
	t.Run("converts legacy ingredient", func(t *testing.T) {
		got := MigrateIngredient(Ingredient{Name: "Milch", AmountAndUnit: "500 ml"})
		assert.Equal(t, Ingredient{Name: "Milch", Amount: 500, Unit: "ml"}, got)
		assert.False(t, got.IsLegacy())
	})

	t.Run("leaves migrated ingredient untouched", func(t *testing.T) {
		ing := Ingredient{Name: "Flour", Amount: 200, Unit: "g"}
		assert.Equal(t, ing, MigrateIngredient(ing))
	})

	t.Run("recipe reports legacy ingredients", func(t *testing.T) {
		r := &Recipe{Ingredients: []Ingredient{{Name: "Eggs", Amount: 2, Unit: "pcs"}, {Name: "Milk", AmountAndUnit: "1 l"}}}
		assert.True(t, r.HasLegacyIngredients())
		r.Ingredients = r.Ingredients[:1]
		assert.False(t, r.HasLegacyIngredients())
	})
}

func TestRecipeUpdate_Apply(t *testing.T) {
	r := &Recipe{
		Name:         "Pancakes",
		Category:     "Breakfast",
		Ingredients:  []Ingredient{{Name: "Flour", Amount: 200, Unit: "g"}},
		Instructions: []string{"Mix"},
		Servings:     intPtr(2),
	}

	RecipeUpdate{
		Name:     strPtr("Crepes"),
		Servings: intPtr(4),
	}.Apply(r)

	assert.Equal(t, "Crepes", r.Name)
	assert.Equal(t, "Breakfast", r.Category)
	assert.Equal(t, 4, *r.Servings)
	assert.Len(t, r.Ingredients, 1)
	assert.Equal(t, []string{"Mix"}, r.Instructions)
}
