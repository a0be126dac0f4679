package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockManager stands in for the transaction manager.
type MockManager struct {
	mock.Mock
}

func (m *MockManager) Do(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(context.Context) error) error); ok {
		return rf(ctx, fn)
	}
	return args.Error(0)
}

// NewPassThroughManager returns a MockManager whose Do simply runs fn once.
func NewPassThroughManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockManager {
	m := &MockManager{}
	m.Test(t)
	m.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context) error")).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Maybe()

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
