package view

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rfpdocs/internal/api"
	"rfpdocs/internal/domain"
	"rfpdocs/mocks"
)

func docWithStatus(id uuid.UUID, status domain.DocumentStatus) *domain.Document {
	return &domain.Document{
		ID:               id,
		Filename:         id.String() + ".pdf",
		OriginalFilename: "rfp.pdf",
		ContentType:      domain.ContentTypePDF,
		Status:           status,
	}
}

func TestDetailModel_StartsLoading(t *testing.T) {
	m := NewDetailModel(new(mocks.MockDocumentAPI), uuid.New())
	assert.Equal(t, ViewLoading, m.View().Kind)
}

func TestDetailModel_CompletedWithExtraction(t *testing.T) {
	id := uuid.New()
	mockAPI := new(mocks.MockDocumentAPI)
	mockAPI.On("GetDocument", mock.Anything, id).
		Return(docWithStatus(id, domain.DocumentStatusCompleted), nil)
	mockAPI.On("GetExtraction", mock.Anything, id).
		Return(&domain.Extraction{ID: uuid.New(), DocumentID: id, Status: domain.ExtractionStatusSuccess}, nil)

	m := NewDetailModel(mockAPI, id)
	m.Load(context.Background())

	v := m.View()
	assert.Equal(t, ViewExtraction, v.Kind)
	require.NotNil(t, v.Document)
	require.NotNil(t, v.Extraction)
	assert.Equal(t, id, v.Extraction.DocumentID)
}

func TestDetailModel_CompletedWithoutExtraction(t *testing.T) {
	id := uuid.New()
	mockAPI := new(mocks.MockDocumentAPI)
	mockAPI.On("GetDocument", mock.Anything, id).
		Return(docWithStatus(id, domain.DocumentStatusCompleted), nil)
	mockAPI.On("GetExtraction", mock.Anything, id).
		Return(nil, &api.ServerError{StatusCode: 404, Message: "extraction not found"})

	m := NewDetailModel(mockAPI, id)
	m.Load(context.Background())

	v := m.View()
	assert.Equal(t, ViewNoExtraction, v.Kind, "a missing extraction degrades, it does not fail the page")
	require.NotNil(t, v.Document)
	assert.Nil(t, v.Extraction)
	assert.Equal(t, "No extraction data available for this document.", v.Message)
}

func TestDetailModel_DocumentFailureIsFatal(t *testing.T) {
	id := uuid.New()
	mockAPI := new(mocks.MockDocumentAPI)
	mockAPI.On("GetDocument", mock.Anything, id).
		Return(nil, &api.ServerError{StatusCode: 404, Message: "document not found"})
	mockAPI.On("GetExtraction", mock.Anything, id).
		Return(&domain.Extraction{DocumentID: id}, nil)

	m := NewDetailModel(mockAPI, id)
	m.Load(context.Background())

	v := m.View()
	assert.Equal(t, ViewError, v.Kind)
	assert.Equal(t, "document not found", v.Message)
	assert.Nil(t, v.Document)
	assert.Nil(t, v.Extraction, "a stray extraction is never shown on an error page")
}

func TestDetailModel_StatusBranches(t *testing.T) {
	cases := []struct {
		name    string
		status  domain.DocumentStatus
		errMsg  string
		kind    ViewKind
		message string
	}{
		{
			name:    "processing",
			status:  domain.DocumentStatusProcessing,
			kind:    ViewProcessing,
			message: "Document is being processed. Please wait...",
		},
		{
			name:    "failed with server message",
			status:  domain.DocumentStatusFailed,
			errMsg:  "OCR engine crashed",
			kind:    ViewFailed,
			message: "OCR engine crashed",
		},
		{
			name:    "failed without message",
			status:  domain.DocumentStatusFailed,
			kind:    ViewFailed,
			message: "Unknown error occurred",
		},
		{
			name:    "uploaded",
			status:  domain.DocumentStatusUploaded,
			kind:    ViewNotStarted,
			message: "Document has been uploaded but extraction has not started yet.",
		},
		{
			name:    "unrecognized status",
			status:  domain.DocumentStatus("ARCHIVED"),
			kind:    ViewNoExtraction,
			message: "Document is in an unrecognized state.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := uuid.New()
			doc := docWithStatus(id, tc.status)
			doc.ErrorMessage = tc.errMsg

			mockAPI := new(mocks.MockDocumentAPI)
			mockAPI.On("GetDocument", mock.Anything, id).Return(doc, nil)
			mockAPI.On("GetExtraction", mock.Anything, id).
				Return(nil, &api.ServerError{StatusCode: 404})

			m := NewDetailModel(mockAPI, id)
			m.Load(context.Background())

			v := m.View()
			assert.Equal(t, tc.kind, v.Kind)
			assert.Equal(t, tc.message, v.Message)
			require.NotNil(t, v.Document)
		})
	}
}

func TestDetailModel_ClosedDiscardsLateCommit(t *testing.T) {
	id := uuid.New()
	mockAPI := new(mocks.MockDocumentAPI)
	mockAPI.On("GetDocument", mock.Anything, id).
		Return(docWithStatus(id, domain.DocumentStatusCompleted), nil)
	mockAPI.On("GetExtraction", mock.Anything, id).
		Return(&domain.Extraction{DocumentID: id}, nil)

	m := NewDetailModel(mockAPI, id)
	m.Close()
	m.Load(context.Background())

	_, ok := m.Document()
	assert.False(t, ok)
	mockAPI.AssertNotCalled(t, "GetDocument", mock.Anything, mock.Anything)
}
