package repository

import (
	"context"
	"errors"

	"github.com/guttosm/recipe-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-service/internal/domain/model"
)

// IsRecipeNotFound reports errors that a recipe circuit breaker should not
// count as failures.
func IsRecipeNotFound(err error) bool {
	return errors.Is(err, ErrRecipeNotFound)
}

// RecipeRepositoryWithCircuitBreaker wraps a recipe repository with circuit breaker protection.
// An open circuit surfaces as circuitbreaker.ErrCircuitOpen, never as a missing recipe.
type RecipeRepositoryWithCircuitBreaker struct {
	repo           RecipeRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRecipeRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRecipeRepositoryWithCircuitBreaker(repo RecipeRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *RecipeRepositoryWithCircuitBreaker {
	return &RecipeRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetByID returns the recipe with the given id with circuit breaker protection.
func (r *RecipeRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	var result *model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// List returns recipes with circuit breaker protection.
func (r *RecipeRepositoryWithCircuitBreaker) List(ctx context.Context, opts RecipeListOptions) ([]model.Recipe, error) {
	var result []model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, opts)
		return cbErr
	})
	return result, err
}

// Create stores a new recipe with circuit breaker protection.
func (r *RecipeRepositoryWithCircuitBreaker) Create(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	var result *model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, recipe)
		return cbErr
	})
	return result, err
}

// Update changes a recipe with circuit breaker protection.
func (r *RecipeRepositoryWithCircuitBreaker) Update(ctx context.Context, id int64, update model.RecipeUpdate) (*model.Recipe, error) {
	var result *model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, update)
		return cbErr
	})
	return result, err
}

// Delete removes a recipe with circuit breaker protection.
func (r *RecipeRepositoryWithCircuitBreaker) Delete(ctx context.Context, id int64) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// MigrateLegacyIngredients runs the ingredient migration with circuit breaker protection.
func (r *RecipeRepositoryWithCircuitBreaker) MigrateLegacyIngredients(ctx context.Context) (int, error) {
	var result int
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.MigrateLegacyIngredients(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RecipeRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry. Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries. Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
