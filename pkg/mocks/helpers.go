package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockAPIForTest creates a new mock API for testing
func NewMockAPIForTest(t *testing.T) *MockAPI {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAPI(ctrl)
}

// NewMockMetricsCollectorForTest creates a new mock MetricsCollector for testing
func NewMockMetricsCollectorForTest(t *testing.T) *MockMetricsCollector {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockMetricsCollector(ctrl)
}
