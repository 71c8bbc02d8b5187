// Package stub is an in-memory implementation of the document-management
// backend's wire contract. It exists so the client and its tests can run
// without the real service: documents live in memory and a fake pipeline
// advances them through the extraction lifecycle.
package stub

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"rfpdocs/internal/domain"
)

// Store holds per-tenant documents and extractions in memory.
type Store struct {
	mu          sync.Mutex
	documents   map[uuid.UUID]*domain.Document
	extractions map[uuid.UUID]*domain.Extraction
	tenants     map[uuid.UUID]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		documents:   make(map[uuid.UUID]*domain.Document),
		extractions: make(map[uuid.UUID]*domain.Extraction),
		tenants:     make(map[uuid.UUID]string),
	}
}

// CreateDocument registers a new document for a tenant.
func (s *Store) CreateDocument(tenant string, doc *domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *doc
	s.documents[doc.ID] = &cp
	s.tenants[doc.ID] = tenant
}

// ListDocuments returns the tenant's documents, newest upload first.
func (s *Store) ListDocuments(tenant string) []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Document, 0)
	for id, doc := range s.documents {
		if s.tenants[id] == tenant {
			out = append(out, *doc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out
}

// GetDocument returns a tenant's document by id.
func (s *Store) GetDocument(tenant string, id uuid.UUID) (*domain.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.documents[id]
	if !ok || s.tenants[id] != tenant {
		return nil, false
	}
	cp := *doc
	return &cp, true
}

// DeleteDocument removes a tenant's document and its extraction.
func (s *Store) DeleteDocument(tenant string, id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[id]; !ok || s.tenants[id] != tenant {
		return false
	}
	delete(s.documents, id)
	delete(s.extractions, id)
	delete(s.tenants, id)
	return true
}

// GetExtraction returns the extraction for a tenant's document, if present.
func (s *Store) GetExtraction(tenant string, documentID uuid.UUID) (*domain.Extraction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tenants[documentID] != tenant {
		return nil, false
	}
	ex, ok := s.extractions[documentID]
	if !ok {
		return nil, false
	}
	cp := *ex
	return &cp, true
}

// getAny returns a document by id irrespective of tenant. Pipeline use only.
func (s *Store) getAny(id uuid.UUID) (*domain.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, false
	}
	cp := *doc
	return &cp, true
}

// SetStatus updates a document's status. Updates on deleted documents are
// silently dropped; the pipeline may race a delete.
func (s *Store) SetStatus(id uuid.UUID, status domain.DocumentStatus, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.documents[id]
	if !ok {
		return
	}
	doc.Status = status
	doc.ErrorMessage = errMsg
	if status.Terminal() {
		now := time.Now().UTC()
		doc.ProcessedAt = &now
	}
}

// SetExtraction stores the extraction for a document.
func (s *Store) SetExtraction(documentID uuid.UUID, ex *domain.Extraction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[documentID]; !ok {
		return
	}
	cp := *ex
	s.extractions[documentID] = &cp
}
