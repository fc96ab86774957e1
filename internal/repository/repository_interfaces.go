// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/recipe-service/internal/domain/model"
)

// RecipeRepositoryInterface defines the interface for recipe repository operations.
// GetByID returns (nil, nil) when the recipe does not exist; Update and Delete
// return ErrRecipeNotFound instead.
type RecipeRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*model.Recipe, error)
	List(ctx context.Context, opts RecipeListOptions) ([]model.Recipe, error)
	Create(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	Update(ctx context.Context, id int64, update model.RecipeUpdate) (*model.Recipe, error)
	Delete(ctx context.Context, id int64) error
	MigrateLegacyIngredients(ctx context.Context) (int, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
