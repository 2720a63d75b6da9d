//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockCounter counter.Interface[rune] 的 mock
type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) Include(item rune) {
	m.Called(item)
}

func (m *MockCounter) Count(item rune) (int, error) {
	args := m.Called(item)
	return args.Int(0), args.Error(1)
}

func (m *MockCounter) Len() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockCounter) Snapshot() map[rune]int {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[rune]int)
}
