package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockImageService is a mock implementation of the image service
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadRecipeImage(ctx context.Context, body io.Reader) (string, error) {
	args := m.Called(ctx, body)
	return args.String(0), args.Error(1)
}
