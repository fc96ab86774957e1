// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockRecipeRepositoryInterface struct {
	mock.Mock
}

func (m *MockRecipeRepositoryInterface) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeRepositoryInterface) List(ctx context.Context, opts repository.RecipeListOptions) ([]model.Recipe, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockRecipeRepositoryInterface) Create(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeRepositoryInterface) Update(ctx context.Context, id int64, update model.RecipeUpdate) (*model.Recipe, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeRepositoryInterface) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepositoryInterface) MigrateLegacyIngredients(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
