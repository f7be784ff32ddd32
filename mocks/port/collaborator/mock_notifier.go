package collaborator

import (
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/port/collaborator"
)

// MockNotifier is a mock implementation of collaborator.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(notification collaborator.Notification) {
	m.Called(notification)
}
