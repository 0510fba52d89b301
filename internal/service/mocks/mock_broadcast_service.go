package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shaharia-lab/topicast/internal/notification"
)

// MockBroadcastService is a mock implementation of service.BroadcastService.
type MockBroadcastService struct {
	mock.Mock
}

//nolint:revive
func (m *MockBroadcastService) Broadcast(ctx context.Context, req notification.BroadcastRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

//nolint:revive
func (m *MockBroadcastService) BroadcastTest(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
