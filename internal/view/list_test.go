package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rfpdocs/internal/api"
	"rfpdocs/internal/domain"
	"rfpdocs/mocks"
)

func sampleDocs(n int) []domain.Document {
	docs := make([]domain.Document, n)
	for i := range docs {
		docs[i] = domain.Document{
			ID:               uuid.New(),
			Filename:         uuid.NewString() + ".pdf",
			OriginalFilename: "rfp.pdf",
			ContentType:      domain.ContentTypePDF,
			FileSize:         1024,
			Status:           domain.DocumentStatusUploaded,
			UploadedAt:       time.Now(),
		}
	}
	return docs
}

func TestListModel_LoadReplacesSnapshot(t *testing.T) {
	mockAPI := new(mocks.MockDocumentAPI)
	docs := sampleDocs(2)
	mockAPI.On("ListDocuments", mock.Anything).Return(docs, nil).Once()

	m := NewListModel(mockAPI)
	m.Load(context.Background())

	got := m.Documents()
	require.Len(t, got, 2)
	assert.Equal(t, docs[0].ID, got[0].ID)
	assert.False(t, m.Loading())
	_, hasErr := m.ErrorMessage()
	assert.False(t, hasErr)
	mockAPI.AssertExpectations(t)
}

func TestListModel_LoadFailureKeepsOldSnapshot(t *testing.T) {
	mockAPI := new(mocks.MockDocumentAPI)
	docs := sampleDocs(1)
	mockAPI.On("ListDocuments", mock.Anything).Return(docs, nil).Once()
	mockAPI.On("ListDocuments", mock.Anything).
		Return(nil, errors.New("dial tcp: connection refused")).Once()

	m := NewListModel(mockAPI)
	m.Load(context.Background())
	m.Load(context.Background())

	assert.Len(t, m.Documents(), 1, "failed reload keeps the previous snapshot")
	msg, ok := m.ErrorMessage()
	require.True(t, ok)
	assert.Equal(t, "Failed to load documents", msg, "transport errors collapse to the generic banner")
}

func TestListModel_LoadFailureServerMessage(t *testing.T) {
	mockAPI := new(mocks.MockDocumentAPI)
	mockAPI.On("ListDocuments", mock.Anything).
		Return(nil, &api.ServerError{StatusCode: 500, Message: "tenant store unavailable"})

	m := NewListModel(mockAPI)
	m.Load(context.Background())

	msg, ok := m.ErrorMessage()
	require.True(t, ok)
	assert.Equal(t, "tenant store unavailable", msg)
}

func TestListModel_BannersExpire(t *testing.T) {
	mockAPI := new(mocks.MockDocumentAPI)
	mockAPI.On("ListDocuments", mock.Anything).Return(sampleDocs(1), nil)

	m := NewListModel(mockAPI)
	base := time.Now()
	m.now = func() time.Time { return base }

	m.HandleUploadSuccess(context.Background(), &domain.UploadResponse{Filename: "rfp.pdf"})
	msg, ok := m.SuccessMessage()
	require.True(t, ok)
	assert.Equal(t, "Successfully uploaded: rfp.pdf", msg)

	m.now = func() time.Time { return base.Add(SuccessBannerTTL + time.Millisecond) }
	_, ok = m.SuccessMessage()
	assert.False(t, ok, "banner disappears after its TTL")
}

func TestListModel_HandleUploadErrorShowsBannerWithoutRefetch(t *testing.T) {
	mockAPI := new(mocks.MockDocumentAPI)

	m := NewListModel(mockAPI)
	m.HandleUploadError("File size exceeds 50MB limit.")

	msg, ok := m.ErrorMessage()
	require.True(t, ok)
	assert.Equal(t, "File size exceeds 50MB limit.", msg)
	mockAPI.AssertNotCalled(t, "ListDocuments", mock.Anything)

	m.DismissError()
	_, ok = m.ErrorMessage()
	assert.False(t, ok)
}

func TestListModel_DeleteConfirmationFlow(t *testing.T) {
	mockAPI := new(mocks.MockDocumentAPI)
	docs := sampleDocs(2)
	mockAPI.On("ListDocuments", mock.Anything).Return(docs, nil)
	mockAPI.On("DeleteDocument", mock.Anything, docs[0].ID).Return(nil)

	m := NewListModel(mockAPI)
	m.Load(context.Background())

	assert.False(t, m.RequestDelete(uuid.New()), "unknown id opens nothing")
	require.True(t, m.RequestDelete(docs[0].ID))
	assert.False(t, m.RequestDelete(docs[1].ID), "one confirmation at a time")

	pending, ok := m.PendingDelete()
	require.True(t, ok)
	assert.Equal(t, docs[0].ID, pending.Document.ID)
	assert.False(t, pending.InFlight)

	m.ConfirmDelete(context.Background())

	_, ok = m.PendingDelete()
	assert.False(t, ok, "confirmation closes on success")
	msg, ok := m.SuccessMessage()
	require.True(t, ok)
	assert.Equal(t, "Document deleted successfully", msg)
	// exactly one refetch after the mutation, on top of the initial load
	mockAPI.AssertNumberOfCalls(t, "ListDocuments", 2)
}

func TestListModel_CancelDeleteTouchesNothing(t *testing.T) {
	mockAPI := new(mocks.MockDocumentAPI)
	docs := sampleDocs(1)
	mockAPI.On("ListDocuments", mock.Anything).Return(docs, nil)

	m := NewListModel(mockAPI)
	m.Load(context.Background())

	require.True(t, m.RequestDelete(docs[0].ID))
	m.CancelDelete()
	_, ok := m.PendingDelete()
	assert.False(t, ok)

	assert.Len(t, m.Documents(), 1)
	mockAPI.AssertNotCalled(t, "DeleteDocument", mock.Anything, mock.Anything)
	mockAPI.AssertNumberOfCalls(t, "ListDocuments", 1)
}

func TestListModel_ConfirmDeleteFailureNoRefetch(t *testing.T) {
	mockAPI := new(mocks.MockDocumentAPI)
	docs := sampleDocs(1)
	mockAPI.On("ListDocuments", mock.Anything).Return(docs, nil)
	mockAPI.On("DeleteDocument", mock.Anything, docs[0].ID).
		Return(&api.ServerError{StatusCode: 500, Message: "storage backend timed out"})

	m := NewListModel(mockAPI)
	m.Load(context.Background())
	require.True(t, m.RequestDelete(docs[0].ID))
	m.ConfirmDelete(context.Background())

	_, ok := m.PendingDelete()
	assert.False(t, ok, "confirmation closes on failure too")
	msg, ok := m.ErrorMessage()
	require.True(t, ok)
	assert.Equal(t, "storage backend timed out", msg)
	assert.Len(t, m.Documents(), 1, "row is never spliced out locally")
	mockAPI.AssertNumberOfCalls(t, "ListDocuments", 1)
}

func TestListModel_CanOpen(t *testing.T) {
	m := NewListModel(new(mocks.MockDocumentAPI))
	assert.True(t, m.CanOpen(domain.Document{Status: domain.DocumentStatusCompleted}))
	assert.False(t, m.CanOpen(domain.Document{Status: domain.DocumentStatusProcessing}))
	assert.False(t, m.CanOpen(domain.Document{Status: domain.DocumentStatusFailed}))
	assert.False(t, m.CanOpen(domain.Document{Status: domain.DocumentStatusUploaded}))
}

func TestListModel_ClosedDiscardsLateResults(t *testing.T) {
	mockAPI := new(mocks.MockDocumentAPI)
	mockAPI.On("ListDocuments", mock.Anything).Return(sampleDocs(3), nil)

	m := NewListModel(mockAPI)
	m.Close()
	m.Load(context.Background())

	assert.Empty(t, m.Documents())
	mockAPI.AssertNotCalled(t, "ListDocuments", mock.Anything)
}
