package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// ManualScheduler drives it while advancing through timer deadlines
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock, ignoring moves into the past
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.Before(m.currentTime) {
		return
	}
	m.currentTime = t
}

// Advance moves the current time forward by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > 0 {
		m.currentTime = m.currentTime.Add(d)
	}
	return m.currentTime
}
