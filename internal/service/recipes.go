package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/metrics"
	"github.com/guttosm/recipe-service/internal/repository"
	"github.com/rs/zerolog/log"
)

var (
	// ErrRecipeNotFound is returned when a recipe id does not exist.
	ErrRecipeNotFound = repository.ErrRecipeNotFound
	// ErrInvalidRecipe is wrapped by every recipe validation failure.
	ErrInvalidRecipe = errors.New("invalid recipe")
)

// RecipeService defines recipe management operations.
type RecipeService interface {
	Get(ctx context.Context, id int64) (*model.Recipe, error)
	List(ctx context.Context, opts repository.RecipeListOptions) ([]model.Recipe, error)
	Create(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	Update(ctx context.Context, id int64, update model.RecipeUpdate) (*model.Recipe, error)
	Delete(ctx context.Context, id int64) error
	MigrateLegacyIngredients(ctx context.Context) (int, error)
}

// RecipeServiceOption configures a RecipeServiceImpl.
type RecipeServiceOption func(*RecipeServiceImpl)

// WithChangeHook registers fn to run after every successful recipe write.
func WithChangeHook(fn func()) RecipeServiceOption {
	return func(s *RecipeServiceImpl) {
		if fn != nil {
			s.onChange = append(s.onChange, fn)
		}
	}
}

// RecipeServiceImpl implements RecipeService on top of a recipe repository.
type RecipeServiceImpl struct {
	repo     repository.RecipeRepositoryInterface
	onChange []func()
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(repo repository.RecipeRepositoryInterface, opts ...RecipeServiceOption) *RecipeServiceImpl {
	s := &RecipeServiceImpl{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the recipe or ErrRecipeNotFound.
func (s *RecipeServiceImpl) Get(ctx context.Context, id int64) (*model.Recipe, error) {
	recipe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	return recipe, nil
}

// List returns recipes matching opts.
func (s *RecipeServiceImpl) List(ctx context.Context, opts repository.RecipeListOptions) ([]model.Recipe, error) {
	return s.repo.List(ctx, opts)
}

// Create validates and stores a new recipe.
func (s *RecipeServiceImpl) Create(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if err := validateRecipe(recipe); err != nil {
		metrics.RecordRecipeOperation("create", "invalid")
		return nil, err
	}

	created, err := s.repo.Create(ctx, recipe)
	if err != nil {
		metrics.RecordRecipeOperation("create", "error")
		return nil, err
	}

	log.Info().Int64("recipe_id", created.ID).Str("name", created.Name).Msg("Recipe created")
	metrics.RecordRecipeOperation("create", "success")
	s.changed()
	return created, nil
}

// Update applies a partial update. The merged recipe must still be valid.
func (s *RecipeServiceImpl) Update(ctx context.Context, id int64, update model.RecipeUpdate) (*model.Recipe, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	update.Apply(current)
	if err := validateRecipe(current); err != nil {
		metrics.RecordRecipeOperation("update", "invalid")
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		metrics.RecordRecipeOperation("update", "error")
		return nil, err
	}

	log.Info().Int64("recipe_id", id).Msg("Recipe updated")
	metrics.RecordRecipeOperation("update", "success")
	s.changed()
	return updated, nil
}

// Delete removes a recipe.
func (s *RecipeServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		metrics.RecordRecipeOperation("delete", "error")
		return err
	}

	log.Info().Int64("recipe_id", id).Msg("Recipe deleted")
	metrics.RecordRecipeOperation("delete", "success")
	s.changed()
	return nil
}

// MigrateLegacyIngredients converts stored "amountAndUnit" ingredients.
func (s *RecipeServiceImpl) MigrateLegacyIngredients(ctx context.Context) (int, error) {
	n, err := s.repo.MigrateLegacyIngredients(ctx)
	if err != nil {
		return n, fmt.Errorf("migrate ingredients: %w", err)
	}
	log.Info().Int("recipes", n).Msg("Legacy ingredients migrated")
	if n > 0 {
		s.changed()
	}
	return n, nil
}

func (s *RecipeServiceImpl) changed() {
	for _, fn := range s.onChange {
		fn()
	}
}

func validateRecipe(r *model.Recipe) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRecipe)
	}
	if r.Servings != nil && *r.Servings < 0 {
		return fmt.Errorf("%w: servings must not be negative", ErrInvalidRecipe)
	}
	for i, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return fmt.Errorf("%w: ingredient %d has no name", ErrInvalidRecipe, i+1)
		}
		if ing.Amount < 0 {
			return fmt.Errorf("%w: ingredient %q has a negative amount", ErrInvalidRecipe, ing.Name)
		}
	}
	return nil
}
