package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

type MockManager struct {
	mock.Mock
}

// NewMockManager returns a manager whose expectations are asserted on cleanup.
func NewMockManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockManager {
	m := &MockManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockManager) Do(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// ExpectDo runs the transaction body once and returns whatever it returned,
// the way the real manager commits on nil and rolls back otherwise.
func (m *MockManager) ExpectDo() *mock.Call {
	var call *mock.Call
	call = m.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			call.ReturnArguments = mock.Arguments{fn(args.Get(0).(context.Context))}
		}).
		Return(nil).
		Once()

	return call
}
