package event

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockBus is a mock implementation of the Bus interface
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, event Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType Type, handler Handler) {
	m.Called(eventType, handler)
}
