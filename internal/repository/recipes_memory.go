package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/guttosm/recipe-service/internal/domain/model"
)

// InMemoryRecipeRepository keeps recipes in a map. It is used when MongoDB is
// disabled and in tests.
type InMemoryRecipeRepository struct {
	mu      sync.RWMutex
	recipes map[int64]model.Recipe
	lastID  int64
}

// NewInMemoryRecipeRepository creates an empty store, optionally seeded with
// recipes that already carry ids.
func NewInMemoryRecipeRepository(seed ...model.Recipe) *InMemoryRecipeRepository {
	r := &InMemoryRecipeRepository{recipes: make(map[int64]model.Recipe, len(seed))}
	for _, recipe := range seed {
		r.recipes[recipe.ID] = cloneRecipe(recipe)
		if recipe.ID > r.lastID {
			r.lastID = recipe.ID
		}
	}
	return r
}

func (r *InMemoryRecipeRepository) GetByID(_ context.Context, id int64) (*model.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.recipes[id]
	if !ok {
		return nil, nil
	}
	out := cloneRecipe(recipe)
	return &out, nil
}

func (r *InMemoryRecipeRepository) List(_ context.Context, opts RecipeListOptions) ([]model.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.recipes))
	for id := range r.recipes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := []model.Recipe{}
	skipped := 0
	for _, id := range ids {
		recipe := r.recipes[id]
		if opts.Category != "" && recipe.Category != opts.Category {
			continue
		}
		if opts.Tag != "" && !slices.Contains(recipe.Tags, opts.Tag) {
			continue
		}
		if skipped < opts.Skip {
			skipped++
			continue
		}
		out = append(out, cloneRecipe(recipe))
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (r *InMemoryRecipeRepository) Create(_ context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	now := time.Now().UTC()
	created := cloneRecipe(*recipe)
	created.ID = r.lastID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.recipes[created.ID] = created

	out := cloneRecipe(created)
	return &out, nil
}

func (r *InMemoryRecipeRepository) Update(_ context.Context, id int64, update model.RecipeUpdate) (*model.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipe, ok := r.recipes[id]
	if !ok {
		return nil, ErrRecipeNotFound
	}
	update.Apply(&recipe)
	recipe.UpdatedAt = time.Now().UTC()
	r.recipes[id] = cloneRecipe(recipe)

	out := cloneRecipe(recipe)
	return &out, nil
}

func (r *InMemoryRecipeRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[id]; !ok {
		return ErrRecipeNotFound
	}
	delete(r.recipes, id)
	return nil
}

func (r *InMemoryRecipeRepository) MigrateLegacyIngredients(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	migrated := 0
	for id, recipe := range r.recipes {
		if !recipe.HasLegacyIngredients() {
			continue
		}
		for i, ing := range recipe.Ingredients {
			recipe.Ingredients[i] = model.MigrateIngredient(ing)
		}
		recipe.UpdatedAt = time.Now().UTC()
		r.recipes[id] = recipe
		migrated++
	}
	return migrated, nil
}

func cloneRecipe(r model.Recipe) model.Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Instructions = slices.Clone(r.Instructions)
	r.Tags = slices.Clone(r.Tags)
	if r.Servings != nil {
		v := *r.Servings
		r.Servings = &v
	}
	if r.CookingTime != nil {
		v := *r.CookingTime
		r.CookingTime = &v
	}
	if r.PreparationTime != nil {
		v := *r.PreparationTime
		r.PreparationTime = &v
	}
	return r
}
