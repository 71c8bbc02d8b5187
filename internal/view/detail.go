package view

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"rfpdocs/internal/api"
	"rfpdocs/internal/domain"
)

// ViewKind is the presentation branch of the detail page.
type ViewKind int

const (
	ViewLoading ViewKind = iota
	// ViewError replaces the whole page; there is nothing partial to show.
	ViewError
	ViewProcessing
	ViewFailed
	ViewNotStarted
	ViewExtraction
	ViewNoExtraction
)

// DetailView is the committed presentation state of the detail page.
type DetailView struct {
	Kind       ViewKind
	Document   *domain.Document
	Extraction *domain.Extraction
	Message    string
}

// DetailModel is the view-model for a single document's detail page.
type DetailModel struct {
	api api.DocumentAPI
	id  uuid.UUID

	mu         sync.Mutex
	document   *domain.Document
	extraction *domain.Extraction
	loading    bool
	errMessage string
	closed     bool
}

// NewDetailModel creates a detail view-model for the given document id.
func NewDetailModel(a api.DocumentAPI, id uuid.UUID) *DetailModel {
	return &DetailModel{api: a, id: id, loading: true}
}

// Load fetches the document and its extraction concurrently and commits both
// in one step. An extraction failure degrades to "no extraction available";
// a document failure is fatal for this view.
func (m *DetailModel) Load(ctx context.Context) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.loading = true
	m.errMessage = ""
	m.mu.Unlock()

	var (
		doc *domain.Document
		ex  *domain.Extraction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := m.api.GetDocument(gctx, m.id)
		if err != nil {
			return err
		}
		doc = d
		return nil
	})
	g.Go(func() error {
		// An extraction may legitimately not exist yet (UPLOADED or
		// PROCESSING documents); swallow the error entirely.
		e, err := m.api.GetExtraction(gctx, m.id)
		if err != nil {
			return nil
		}
		ex = e
		return nil
	})
	err := g.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.loading = false
	if err != nil {
		m.document = nil
		m.extraction = nil
		m.errMessage = api.ErrorMessage(err, "Failed to load document")
		return
	}
	m.document = doc
	m.extraction = ex
}

// Document returns the loaded document, if any.
func (m *DetailModel) Document() (*domain.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.document, m.document != nil
}

// Extraction returns the loaded extraction, if any.
func (m *DetailModel) Extraction() (*domain.Extraction, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.extraction, m.extraction != nil
}

// View returns the presentation branch for the current state. Branching is
// purely on the loaded document's status.
func (m *DetailModel) View() DetailView {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loading {
		return DetailView{Kind: ViewLoading}
	}
	if m.errMessage != "" || m.document == nil {
		msg := m.errMessage
		if msg == "" {
			msg = "Document not found"
		}
		return DetailView{Kind: ViewError, Message: msg}
	}

	doc := m.document
	switch doc.Status {
	case domain.DocumentStatusProcessing:
		return DetailView{
			Kind:     ViewProcessing,
			Document: doc,
			Message:  "Document is being processed. Please wait...",
		}
	case domain.DocumentStatusFailed:
		msg := doc.ErrorMessage
		if msg == "" {
			msg = "Unknown error occurred"
		}
		return DetailView{Kind: ViewFailed, Document: doc, Message: msg}
	case domain.DocumentStatusUploaded:
		return DetailView{
			Kind:     ViewNotStarted,
			Document: doc,
			Message:  "Document has been uploaded but extraction has not started yet.",
		}
	case domain.DocumentStatusCompleted:
		if m.extraction != nil {
			return DetailView{Kind: ViewExtraction, Document: doc, Extraction: m.extraction}
		}
		return DetailView{
			Kind:     ViewNoExtraction,
			Document: doc,
			Message:  "No extraction data available for this document.",
		}
	default:
		// A status this client does not know about. Show the document
		// without extraction UI rather than failing the page.
		return DetailView{
			Kind:     ViewNoExtraction,
			Document: doc,
			Message:  "Document is in an unrecognized state.",
		}
	}
}

// Close marks the view as dismissed; a fetch completing afterwards is
// discarded rather than committed.
func (m *DetailModel) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}
