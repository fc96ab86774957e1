// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, to string, list model.ShoppingList) error {
	args := m.Called(ctx, to, list)
	return args.Error(0)
}
