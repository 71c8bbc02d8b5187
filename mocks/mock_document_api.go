package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"rfpdocs/internal/api"
	"rfpdocs/internal/domain"
)

// MockDocumentAPI is a mock implementation of api.DocumentAPI.
type MockDocumentAPI struct {
	mock.Mock
}

func (m *MockDocumentAPI) Whoami(ctx context.Context) (*domain.TenantInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantInfo), args.Error(1)
}

func (m *MockDocumentAPI) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentAPI) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentAPI) UploadDocument(ctx context.Context, in api.UploadInput, onProgress api.ProgressFunc) (*domain.UploadResponse, error) {
	args := m.Called(ctx, in, onProgress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadResponse), args.Error(1)
}

func (m *MockDocumentAPI) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentAPI) GetExtraction(ctx context.Context, documentID uuid.UUID) (*domain.Extraction, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Extraction), args.Error(1)
}
