package console

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/LootRoller_Go/internal/domain"
	"github.com/osse101/LootRoller_Go/internal/upgrade"
)

// MockSession is a mock implementation of the Session interface
type MockSession struct {
	mock.Mock
}

func (m *MockSession) Roll(ctx context.Context) upgrade.RollResult {
	args := m.Called(ctx)
	return args.Get(0).(upgrade.RollResult)
}

func (m *MockSession) Mode() domain.Mode {
	args := m.Called()
	return args.Get(0).(domain.Mode)
}

func (m *MockSession) Slots() []domain.Slot {
	args := m.Called()
	return args.Get(0).([]domain.Slot)
}

func (m *MockSession) Items() map[domain.Slot]domain.Item {
	args := m.Called()
	return args.Get(0).(map[domain.Slot]domain.Item)
}

func (m *MockSession) RollCount() int {
	args := m.Called()
	return args.Int(0)
}
