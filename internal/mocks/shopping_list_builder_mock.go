// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockShoppingListBuilder struct {
	mock.Mock
}

func (m *MockShoppingListBuilder) Build(ctx context.Context, selections []model.MealSelection) (model.ShoppingList, error) {
	args := m.Called(ctx, selections)
	list, _ := args.Get(0).(model.ShoppingList)
	return list, args.Error(1)
}

func (m *MockShoppingListBuilder) InvalidateCache() {
	m.Called()
}
